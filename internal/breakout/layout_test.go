package breakout

import (
	"strings"
	"testing"

	"github.com/codebrk/codebreak/internal/config"
	"github.com/codebrk/codebreak/internal/source"
)

func testMetrics() MonoMetrics {
	return NewMonoMetrics(config.Default().Font)
}

func displayLines(texts ...string) []source.DisplayLine {
	lines := make([]source.DisplayLine, len(texts))
	for i, t := range texts {
		lines[i] = source.DisplayLine{Number: i + 1, Text: t}
	}
	return lines
}

func TestTokenReconstruction(t *testing.T) {
	lines := []string{
		"mov eax, ebx",
		"  if ( v12 > 0 )",
		"\tcall    sub_401000",
		"   ",
		"ret",
	}

	for _, line := range lines {
		parts := tokenRE.FindAllString(line, -1)
		if got := strings.Join(parts, ""); got != line {
			t.Errorf("tokens of %q reassemble to %q", line, got)
		}
		// Alternation must never produce mixed runs.
		for _, p := range parts {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" && trimmed != p {
				t.Errorf("token %q mixes whitespace and text", p)
			}
		}
	}
}

func TestBuildLayoutGeometry(t *testing.T) {
	cfg := config.Default()
	fm := testMetrics()

	bricks, renderLines := BuildLayout(displayLines("mov eax, ebx"), 640, 384, fm, cfg)

	if len(renderLines) != 1 {
		t.Fatalf("got %d render lines, expected 1", len(renderLines))
	}
	if renderLines[0].BaselineY != cfg.Layout.CodeTop+fm.Ascent() {
		t.Errorf("baseline = %d, expected %d", renderLines[0].BaselineY, cfg.Layout.CodeTop+fm.Ascent())
	}

	// "mov", "eax," and "ebx" become bricks; the spaces only advance.
	if len(bricks) != 3 {
		t.Fatalf("got %d bricks, expected 3", len(bricks))
	}

	first := bricks[0]
	if first.Label != "mov" || first.SourceText != "mov eax, ebx" || first.LineNumber != 1 {
		t.Errorf("first brick = %+v", first)
	}
	if first.Rect.X != cfg.Layout.CodeLeft {
		t.Errorf("first brick X = %d, expected %d", first.Rect.X, cfg.Layout.CodeLeft)
	}
	if first.Rect.Y != cfg.Layout.CodeTop {
		t.Errorf("first brick Y = %d, expected %d", first.Rect.Y, cfg.Layout.CodeTop)
	}
	if first.Rect.W != 3*cfg.Font.CharWidth {
		t.Errorf("first brick W = %d, expected %d", first.Rect.W, 3*cfg.Font.CharWidth)
	}

	// "eax," starts after "mov" plus one space: 4 advances.
	second := bricks[1]
	if second.Rect.X != cfg.Layout.CodeLeft+4*cfg.Font.CharWidth {
		t.Errorf("second brick X = %d, expected %d", second.Rect.X, cfg.Layout.CodeLeft+4*cfg.Font.CharWidth)
	}

	for _, b := range bricks {
		if !b.Alive {
			t.Errorf("brick %q not alive after layout", b.Label)
		}
	}
}

func TestBuildLayoutLeadingWhitespaceAdvances(t *testing.T) {
	cfg := config.Default()
	bricks, _ := BuildLayout(displayLines("    ret"), 640, 384, testMetrics(), cfg)

	if len(bricks) != 1 {
		t.Fatalf("got %d bricks, expected 1", len(bricks))
	}
	want := cfg.Layout.CodeLeft + 4*cfg.Font.CharWidth
	if bricks[0].Rect.X != want {
		t.Errorf("indented brick X = %d, expected %d", bricks[0].Rect.X, want)
	}
}

func TestBuildLayoutWhitespaceOnlyLine(t *testing.T) {
	bricks, renderLines := BuildLayout(displayLines("   ", "ret"), 640, 384, testMetrics(), config.Default())

	if len(renderLines) != 2 {
		t.Fatalf("got %d render lines, expected 2", len(renderLines))
	}
	if len(bricks) != 1 {
		t.Errorf("got %d bricks, expected only the ret brick", len(bricks))
	}
	if bricks[0].LineNumber != 2 {
		t.Errorf("brick line = %d, expected 2", bricks[0].LineNumber)
	}
}

func TestBuildLayoutTruncationMonotonicity(t *testing.T) {
	cfg := config.Default()
	fm := testMetrics()
	line := displayLines("one two three four five six seven eight nine ten")

	prev := -1
	for w := 1200; w >= cfg.Layout.MinViewportW/4; w -= 16 {
		bricks, _ := BuildLayout(line, w, 384, fm, cfg)
		if prev >= 0 && len(bricks) > prev {
			t.Fatalf("narrowing to %d increased bricks: %d > %d", w, len(bricks), prev)
		}
		prev = len(bricks)
	}
}

func TestBuildLayoutNarrowViewportKeepsFirstToken(t *testing.T) {
	cfg := config.Default()
	// 30 chars = 240 px, wider than the whole 100 px viewport.
	long := strings.Repeat("x", 30)
	bricks, _ := BuildLayout(displayLines(long+" tail"), 100, 384, testMetrics(), cfg)

	if len(bricks) != 1 {
		t.Fatalf("got %d bricks, expected the oversized first token only", len(bricks))
	}
	if bricks[0].Label != long {
		t.Errorf("brick label = %q", bricks[0].Label)
	}
}

func TestBuildLayoutRowCapAndFloor(t *testing.T) {
	cfg := config.Default()
	fm := testMetrics()

	lineH := cfg.Layout.MinLineHeight
	if h := fm.Height() + 2; h > lineH {
		lineH = h
	}
	wantRows := (384 - cfg.Layout.CodeTop - cfg.Layout.BottomReserve) / lineH

	texts := make([]string, wantRows+20)
	for i := range texts {
		texts[i] = "nop"
	}
	_, renderLines := BuildLayout(displayLines(texts...), 640, 384, fm, cfg)
	if len(renderLines) != wantRows {
		t.Errorf("got %d rows, expected %d", len(renderLines), wantRows)
	}

	// A viewport with no room below the top margin still shows one row.
	_, renderLines = BuildLayout(displayLines(texts...), 640, 100, fm, cfg)
	if len(renderLines) != 1 {
		t.Errorf("degenerate viewport rows = %d, expected 1", len(renderLines))
	}
}

func TestBuildLayoutMinBrickWidth(t *testing.T) {
	cfg := config.Default()
	cfg.Font.CharWidth = 1 // 1 px per char: single-char tokens hit the floor
	bricks, _ := BuildLayout(displayLines("a"), 640, 384, NewMonoMetrics(cfg.Font), cfg)

	if len(bricks) != 1 {
		t.Fatalf("got %d bricks, expected 1", len(bricks))
	}
	if bricks[0].Rect.W != cfg.Gameplay.BrickMinWidth {
		t.Errorf("brick W = %d, expected floor %d", bricks[0].Rect.W, cfg.Gameplay.BrickMinWidth)
	}
}

func TestBuildLayoutReplacesWholesale(t *testing.T) {
	cfg := config.Default()
	fm := testMetrics()
	lines := displayLines("mov eax, ebx", "ret")

	wide, _ := BuildLayout(lines, 1200, 384, fm, cfg)
	narrow, _ := BuildLayout(lines, 640, 384, fm, cfg)

	// IDs restart from zero on every layout: no incremental diffing.
	if len(wide) == 0 || len(narrow) == 0 {
		t.Fatal("expected bricks from both layouts")
	}
	if wide[0].ID != 0 || narrow[0].ID != 0 {
		t.Errorf("IDs do not restart: wide=%d narrow=%d", wide[0].ID, narrow[0].ID)
	}
}

func TestMonoMetricsWideRunes(t *testing.T) {
	fm := testMetrics()
	if fm.Advance("ab") != 2*fm.CharWidth {
		t.Errorf("ASCII advance = %d", fm.Advance("ab"))
	}
	// CJK runes are double width.
	if fm.Advance("漢") != 2*fm.CharWidth {
		t.Errorf("wide rune advance = %d, expected %d", fm.Advance("漢"), 2*fm.CharWidth)
	}
}
