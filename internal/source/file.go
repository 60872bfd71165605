package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FileProvider serves the lines of a text file. Blank lines are skipped
// (they would produce empty brick rows), but surviving lines keep their
// original file line numbers. The anchor is resolved from a requested
// 1-based line number to the index of the first surviving line at or
// after it, matching how a cursor position maps onto a filtered listing.
type FileProvider struct {
	path       string
	anchorLine int // 1-based requested anchor line, 0 = top
}

// NewFileProvider creates a provider for the given path. anchorLine is
// the 1-based line the iteration should start from; 0 starts at the top.
func NewFileProvider(path string, anchorLine int) *FileProvider {
	return &FileProvider{path: path, anchorLine: anchorLine}
}

// SetAnchorLine changes the requested anchor line for subsequent reads.
func (p *FileProvider) SetAnchorLine(line int) {
	p.anchorLine = line
}

// Lines reads the file and returns its non-blank lines plus the anchor
// index. Read errors degrade to an empty sequence; callers wrap with
// WithFallback to keep the game playable.
func (p *FileProvider) Lines() ([]DisplayLine, int) {
	lines, err := p.read()
	if err != nil {
		return nil, 0
	}

	anchor := 0
	if p.anchorLine > 0 {
		for i, l := range lines {
			if l.Number >= p.anchorLine {
				anchor = i
				break
			}
		}
	}
	return lines, anchor
}

func (p *FileProvider) read() ([]DisplayLine, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("source: cannot open %s: %w", p.path, err)
	}
	defer f.Close()

	var lines []DisplayLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, DisplayLine{Number: number, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("source: cannot read %s: %w", p.path, err)
	}
	return lines, nil
}
