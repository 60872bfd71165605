// Package source supplies the ordered code lines the game turns into
// bricks. The game core only sees the Provider interface, so lines can
// come from a file, a fixed placeholder listing, or anything else that
// can produce numbered text.
package source

// DisplayLine is a single line of source text with its original line number.
type DisplayLine struct {
	Number int    // 1-based line number in the originating listing
	Text   string // Line content, whitespace preserved
}

// Provider produces the current line sequence and an anchor index into
// it. The anchor marks where iteration should start (typically the
// line the user is looking at); 0 means start at the top.
type Provider interface {
	Lines() ([]DisplayLine, int)
}

// Rotate returns up to limit lines starting at anchor and wrapping
// cyclically: element i of the result is lines[(anchor+i) mod len].
// An out-of-range anchor is treated as 0. An empty input yields nil.
func Rotate(lines []DisplayLine, anchor, limit int) []DisplayLine {
	if len(lines) == 0 || limit <= 0 {
		return nil
	}
	if anchor < 0 || anchor >= len(lines) {
		anchor = 0
	}

	n := len(lines)
	count := limit
	if count > n {
		count = n
	}

	out := make([]DisplayLine, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, lines[(anchor+i)%n])
	}
	return out
}

// placeholderLines is served when no source is available so the game
// is always playable.
var placeholderLines = []DisplayLine{
	{Number: 1, Text: "mov eax, ebx"},
	{Number: 2, Text: "cmp eax, 0"},
	{Number: 3, Text: "jne loc_next"},
	{Number: 4, Text: "call sub_handler"},
	{Number: 5, Text: "ret"},
}

// Placeholder returns a provider serving a small fixed instruction
// listing with anchor 0.
func Placeholder() Provider {
	return placeholderProvider{}
}

type placeholderProvider struct{}

func (placeholderProvider) Lines() ([]DisplayLine, int) {
	out := make([]DisplayLine, len(placeholderLines))
	copy(out, placeholderLines)
	return out, 0
}

// WithFallback wraps a provider so that an empty line sequence degrades
// to the placeholder listing instead of an empty brick field.
func WithFallback(p Provider) Provider {
	if p == nil {
		return Placeholder()
	}
	return fallbackProvider{inner: p}
}

type fallbackProvider struct {
	inner Provider
}

func (f fallbackProvider) Lines() ([]DisplayLine, int) {
	lines, anchor := f.inner.Lines()
	if len(lines) == 0 {
		return Placeholder().Lines()
	}
	return lines, anchor
}

// Static returns a provider serving a fixed slice with a fixed anchor.
// Useful for tests and for hosts that compute lines up front.
func Static(lines []DisplayLine, anchor int) Provider {
	return staticProvider{lines: lines, anchor: anchor}
}

type staticProvider struct {
	lines  []DisplayLine
	anchor int
}

func (s staticProvider) Lines() ([]DisplayLine, int) {
	out := make([]DisplayLine, len(s.lines))
	copy(out, s.lines)
	return out, s.anchor
}
