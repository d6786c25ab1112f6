package textfit

import (
	"strings"
)

const (
	// DefaultSize is the starting font size for a phrase overlay.
	DefaultSize = 48
	// MinSize is the floor; below this the phrase wraps instead of shrinking.
	MinSize = 12
)

// Measurer reports the rendered width in pixels of text at a font size.
type Measurer interface {
	Width(text string, size float64) float64
}

// Result describes how a phrase fits into a fixed-width slot. Lines holds a
// single entry when the phrase fits on one line, or exactly two entries when
// it had to wrap at the minimum size.
type Result struct {
	Size  int
	Lines []string
}

// Wrapped reports whether the phrase needed a second line.
func (r Result) Wrapped() bool {
	return len(r.Lines) == 2
}

// Fit finds the largest font size between MinSize and DefaultSize at which
// text fits within maxWidth. If even MinSize overflows, the text is split
// greedily onto two lines: words are packed onto the first line while it
// stays within maxWidth, and the remainder goes onto the second. A first
// word that alone exceeds maxWidth is kept whole on line one.
func Fit(m Measurer, text string, maxWidth float64) Result {
	for size := DefaultSize; size >= MinSize; size-- {
		if m.Width(text, float64(size)) <= maxWidth {
			return Result{Size: size, Lines: []string{text}}
		}
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		// Nothing to wrap; the single word stays whole at the floor.
		return Result{Size: MinSize, Lines: []string{text}}
	}

	line := words[0]
	i := 1
	for ; i < len(words); i++ {
		candidate := line + " " + words[i]
		if m.Width(candidate, MinSize) > maxWidth {
			break
		}
		line = candidate
	}
	if i == len(words) {
		// The joined words fit after all (trailing whitespace in the
		// original accounted for the overflow).
		return Result{Size: MinSize, Lines: []string{line}}
	}

	return Result{Size: MinSize, Lines: []string{line, strings.Join(words[i:], " ")}}
}
