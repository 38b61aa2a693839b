package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"kitten", "sitting", 3},
		{"Metre", "Meter", 2},
		{"Kilometre", "Kilometres", 1},
		{"μm", "um", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestClosest(t *testing.T) {
	units := []string{"Metre", "Kilometre", "Centimetre", "Foot", "Mile"}

	assert.Equal(t, []string{"Metre"}, Closest("Meter", units))
	assert.Equal(t, []string{"Kilometre"}, Closest("kilometre", units))
	assert.Empty(t, Closest("Parsec", units))
	assert.Empty(t, Closest("Metre", units))

	many := Closest("ab", []string{"ac", "ad", "ae", "af", "ab"})
	assert.Equal(t, []string{"ac", "ad", "ae"}, many)
}
