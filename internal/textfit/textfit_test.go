package textfit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charMeasurer pretends every rune is exactly 0.6*size wide, which keeps the
// arithmetic in tests predictable.
type charMeasurer struct{}

func (charMeasurer) Width(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.6
}

func TestFitShortTextUsesDefaultSize(t *testing.T) {
	r := Fit(charMeasurer{}, "HI", 1000)

	assert.Equal(t, DefaultSize, r.Size)
	assert.Equal(t, []string{"HI"}, r.Lines)
	assert.False(t, r.Wrapped())
}

func TestFitShrinksToFit(t *testing.T) {
	// 10 chars at size 48 = 288px; at size 20 = 120px.
	r := Fit(charMeasurer{}, "ABCDEFGHIJ", 120)

	assert.Equal(t, 20, r.Size)
	assert.False(t, r.Wrapped())
}

func TestFitNeverGoesBelowFloorWithoutWrapping(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
	}{
		{"short phrase wide slot", "FAMOUS", 500},
		{"long phrase narrow slot", "FAMOUS SINCE THE DAY I WAS BORN", 200},
		{"single word tight slot", "SUPERCALIFRAGILISTIC", 90},
	}

	m := charMeasurer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Fit(m, tt.text, tt.maxWidth)

			require.GreaterOrEqual(t, r.Size, MinSize)
			require.LessOrEqual(t, r.Size, DefaultSize)

			if !r.Wrapped() {
				// May only overflow when a lone word cannot shrink further.
				if m.Width(tt.text, float64(r.Size)) > tt.maxWidth {
					assert.Equal(t, MinSize, r.Size)
					assert.NotContains(t, strings.TrimSpace(tt.text), " ")
				}
			} else {
				// The longer of the two lines must fit, unless line one is a
				// single oversized word kept whole.
				for i, line := range r.Lines {
					if i == 0 && !strings.Contains(line, " ") {
						continue
					}
					assert.LessOrEqual(t, m.Width(line, float64(r.Size)), tt.maxWidth,
						"line %d %q overflows", i, line)
				}
			}
		})
	}
}

func TestFitWrapsOntoTwoLines(t *testing.T) {
	// Each char is 7.2px at the floor; 19 chars won't fit in 80px.
	r := Fit(charMeasurer{}, "HELLO WORLD FROM GO", 80)

	require.True(t, r.Wrapped())
	assert.Equal(t, MinSize, r.Size)
	assert.Equal(t, "HELLO WORLD", r.Lines[0])
	assert.Equal(t, "FROM GO", r.Lines[1])
}

func TestFitGreedyPacking(t *testing.T) {
	// 11 chars fit per line at the floor (80 / 7.2 = 11.1).
	r := Fit(charMeasurer{}, "AA BB CC DD EE FF", 80)

	require.True(t, r.Wrapped())
	assert.Equal(t, "AA BB CC DD", r.Lines[0])
	assert.Equal(t, "EE FF", r.Lines[1])
}

func TestFitOversizedFirstWordKeptWhole(t *testing.T) {
	r := Fit(charMeasurer{}, "EXTRAORDINARILY LONG", 40)

	require.True(t, r.Wrapped())
	assert.Equal(t, "EXTRAORDINARILY", r.Lines[0])
	assert.Equal(t, "LONG", r.Lines[1])
}

func TestFitEmptyString(t *testing.T) {
	r := Fit(charMeasurer{}, "", 100)

	assert.Equal(t, DefaultSize, r.Size)
	assert.False(t, r.Wrapped())
}

func TestFontMeasurerMonotonicInSize(t *testing.T) {
	m, err := NewFontMeasurerFromFile("")
	require.NoError(t, err)

	small := m.Width("FAMOUS SINCE 1990", 12)
	large := m.Width("FAMOUS SINCE 1990", 48)

	assert.Greater(t, small, 0.0)
	assert.Greater(t, large, small)
}

func TestFitWithRealFont(t *testing.T) {
	m, err := NewFontMeasurerFromFile("")
	require.NoError(t, err)

	r := Fit(m, "FAMOUS SINCE FOREVER AND A DAY", 150)

	require.GreaterOrEqual(t, r.Size, MinSize)
	if !r.Wrapped() {
		assert.LessOrEqual(t, m.Width(r.Lines[0], float64(r.Size)), 150.0)
	}
}
