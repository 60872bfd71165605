// Package breakout implements the codebreak game: source lines are laid
// out token by token as destructible bricks, and a deterministic
// fixed-timestep Breakout simulation is played against them.
package breakout

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/codebrk/codebreak/internal/config"
	"github.com/codebrk/codebreak/internal/core"
	"github.com/codebrk/codebreak/internal/source"
)

// tokenRE matches either a maximal run of non-whitespace or a maximal
// run of whitespace, so concatenating all matches reproduces the line.
var tokenRE = regexp.MustCompile(`\S+|\s+`)

// FontMetrics measures text for brick layout. The game core never
// assumes a particular renderer; the platform supplies metrics matching
// whatever it draws with.
type FontMetrics interface {
	// Advance returns the pixel width of s.
	Advance(s string) int
	// Height returns the line height contribution of the font.
	Height() int
	// Ascent returns the baseline offset from the top of a row.
	Ascent() int
}

// MonoMetrics is a fixed-cell monospace metric. Advance accounts for
// East Asian wide runes via go-runewidth, so CJK tokens occupy two
// cells like they do on screen.
type MonoMetrics struct {
	CharWidth  int
	CharHeight int
	CharAscent int
}

// NewMonoMetrics builds metrics from the font section of the config.
func NewMonoMetrics(cfg config.FontConfig) MonoMetrics {
	return MonoMetrics{
		CharWidth:  cfg.CharWidth,
		CharHeight: cfg.CharHeight,
		CharAscent: cfg.Ascent,
	}
}

func (m MonoMetrics) Advance(s string) int {
	return runewidth.StringWidth(s) * m.CharWidth
}

func (m MonoMetrics) Height() int {
	return m.CharHeight
}

func (m MonoMetrics) Ascent() int {
	return m.CharAscent
}

// Brick is one destructible region: a single non-whitespace token from
// a source line.
type Brick struct {
	ID         int
	Rect       core.Rect
	Label      string // The token itself
	SourceText string // Full originating line, for tooltips
	LineNumber int
	DrawX      int // Baseline draw position of the label
	DrawY      int
	Alive      bool
}

// RenderLine is one gutter entry: a line number with its text baseline.
type RenderLine struct {
	Number    int
	BaselineY int
}

// BuildLayout places the given (already rotated and capped) lines into
// the viewport, one text row per line, and returns a brick per
// non-whitespace token plus the gutter rows.
//
// Tokens advance a horizontal cursor from the left margin; a token that
// would cross the right margin ends the line (silent truncation, no
// wrapping), except that the first token of a line is always emitted so
// a narrow viewport still yields something to hit. Whitespace runs
// advance the cursor without producing a brick.
func BuildLayout(lines []source.DisplayLine, viewW, viewH int, fm FontMetrics, cfg config.Config) ([]Brick, []RenderLine) {
	codeLeft := cfg.Layout.CodeLeft
	codeRight := viewW - cfg.Layout.RightMargin
	codeTop := cfg.Layout.CodeTop
	lineH := core.Max(cfg.Layout.MinLineHeight, fm.Height()+2)

	maxVisible := core.Max(1, (viewH-codeTop-cfg.Layout.BottomReserve)/lineH)
	if len(lines) > maxVisible {
		lines = lines[:maxVisible]
	}

	var bricks []Brick
	renderLines := make([]RenderLine, 0, len(lines))

	id := 0
	for i, line := range lines {
		yBase := codeTop + i*lineH + fm.Ascent()
		renderLines = append(renderLines, RenderLine{Number: line.Number, BaselineY: yBase})

		x := codeLeft
		emitted := false
		for _, part := range tokenRE.FindAllString(line.Text, -1) {
			partW := core.Max(1, fm.Advance(part))
			isToken := strings.TrimSpace(part) != ""
			overflow := x+partW > codeRight

			if overflow && (emitted || !isToken) {
				break
			}
			if isToken {
				bricks = append(bricks, Brick{
					ID:         id,
					Rect:       core.NewRect(x, yBase-fm.Ascent(), core.Max(cfg.Gameplay.BrickMinWidth, partW), lineH),
					Label:      part,
					SourceText: line.Text,
					LineNumber: line.Number,
					DrawX:      x,
					DrawY:      yBase,
					Alive:      true,
				})
				id++
				emitted = true
			}
			if overflow {
				break
			}
			x += partW
		}
	}

	return bricks, renderLines
}
