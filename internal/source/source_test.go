package source

import (
	"os"
	"path/filepath"
	"testing"
)

func numberedLines(numbers ...int) []DisplayLine {
	lines := make([]DisplayLine, len(numbers))
	for i, n := range numbers {
		lines[i] = DisplayLine{Number: n, Text: "line"}
	}
	return lines
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		numbers  []int
		anchor   int
		limit    int
		expected []int
	}{
		{
			name:     "anchor mid-sequence wraps",
			numbers:  []int{1, 2, 3, 4, 5},
			anchor:   3,
			limit:    4,
			expected: []int{4, 5, 1, 2},
		},
		{
			name:     "anchor zero is identity",
			numbers:  []int{1, 2, 3},
			anchor:   0,
			limit:    10,
			expected: []int{1, 2, 3},
		},
		{
			name:     "out of range anchor treated as zero",
			numbers:  []int{1, 2, 3},
			anchor:   7,
			limit:    2,
			expected: []int{1, 2},
		},
		{
			name:     "negative anchor treated as zero",
			numbers:  []int{1, 2, 3},
			anchor:   -1,
			limit:    3,
			expected: []int{1, 2, 3},
		},
		{
			name:     "limit truncates",
			numbers:  []int{1, 2, 3, 4, 5},
			anchor:   0,
			limit:    2,
			expected: []int{1, 2},
		},
		{
			name:     "empty input",
			numbers:  nil,
			anchor:   0,
			limit:    5,
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(numberedLines(tc.numbers...), tc.anchor, tc.limit)
			if len(got) != len(tc.expected) {
				t.Fatalf("Rotate returned %d lines, expected %d", len(got), len(tc.expected))
			}
			for i, want := range tc.expected {
				if got[i].Number != want {
					t.Errorf("result[%d].Number = %d, expected %d", i, got[i].Number, want)
				}
			}
		})
	}
}

func TestRotateLawAnyAnchor(t *testing.T) {
	lines := numberedLines(1, 2, 3, 4, 5, 6, 7)

	for anchor := 0; anchor < len(lines); anchor++ {
		for limit := 1; limit <= len(lines)+2; limit++ {
			got := Rotate(lines, anchor, limit)

			want := limit
			if want > len(lines) {
				want = len(lines)
			}
			if len(got) != want {
				t.Fatalf("anchor=%d limit=%d: got %d lines, expected %d", anchor, limit, len(got), want)
			}
			for i := range got {
				expected := lines[(anchor+i)%len(lines)].Number
				if got[i].Number != expected {
					t.Fatalf("anchor=%d limit=%d pos=%d: got line %d, expected %d",
						anchor, limit, i, got[i].Number, expected)
				}
			}
		}
	}
}

func TestPlaceholderNonEmpty(t *testing.T) {
	lines, anchor := Placeholder().Lines()
	if len(lines) == 0 {
		t.Fatal("placeholder must serve at least one line")
	}
	if anchor != 0 {
		t.Errorf("placeholder anchor = %d, expected 0", anchor)
	}
	if lines[0].Text != "mov eax, ebx" {
		t.Errorf("first placeholder line = %q", lines[0].Text)
	}
}

func TestWithFallback(t *testing.T) {
	// Empty inner provider degrades to placeholder.
	lines, _ := WithFallback(Static(nil, 0)).Lines()
	if len(lines) == 0 {
		t.Fatal("fallback should serve placeholder lines for empty input")
	}

	// Non-empty inner provider passes through.
	inner := numberedLines(10, 20)
	lines, anchor := WithFallback(Static(inner, 1)).Lines()
	if len(lines) != 2 || anchor != 1 {
		t.Errorf("fallback passthrough = %d lines anchor %d, expected 2/1", len(lines), anchor)
	}

	// Nil provider still playable.
	lines, _ = WithFallback(nil).Lines()
	if len(lines) == 0 {
		t.Fatal("nil provider should degrade to placeholder")
	}
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing.txt")
	content := "push rbp\n\nmov rbp, rsp\nsub rsp, 0x20\n\nret\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	p := NewFileProvider(path, 0)
	lines, anchor := p.Lines()

	// Blank lines skipped, numbering preserved.
	wantNumbers := []int{1, 3, 4, 6}
	if len(lines) != len(wantNumbers) {
		t.Fatalf("got %d lines, expected %d", len(lines), len(wantNumbers))
	}
	for i, n := range wantNumbers {
		if lines[i].Number != n {
			t.Errorf("lines[%d].Number = %d, expected %d", i, lines[i].Number, n)
		}
	}
	if anchor != 0 {
		t.Errorf("anchor = %d, expected 0", anchor)
	}

	// Anchor on a skipped line resolves to the next surviving line.
	p.SetAnchorLine(2)
	_, anchor = p.Lines()
	if anchor != 1 {
		t.Errorf("anchor for line 2 = %d, expected 1 (first line at or after)", anchor)
	}

	// Anchor past the end stays at 0.
	p.SetAnchorLine(99)
	_, anchor = p.Lines()
	if anchor != 0 {
		t.Errorf("anchor past end = %d, expected 0", anchor)
	}
}

func TestFileProviderMissingFile(t *testing.T) {
	p := NewFileProvider("/nonexistent/listing.txt", 0)
	lines, anchor := p.Lines()
	if lines != nil || anchor != 0 {
		t.Errorf("missing file should yield empty sequence, got %d lines", len(lines))
	}
}
