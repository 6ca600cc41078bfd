package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hospital-search/searchclient/internal/color"
)

func TestFromStringKnownColors(t *testing.T) {
	cases := map[string]color.Color{
		"blue":      color.Blue,
		"Red":       color.Red,
		"CYAN":      color.Cyan,
		"purple":    color.Purple,
		"Green":     color.Green,
		"orange":    color.Orange,
		"pink":      color.Pink,
		"grey":      color.Grey,
		"lightblue": color.Lightblue,
		"brown":     color.Brown,
	}
	for s, want := range cases {
		assert.Equal(t, want, color.FromString(s), "parsing %q", s)
	}
}

func TestFromStringUnknownFallsBackToBlue(t *testing.T) {
	assert.Equal(t, color.Blue, color.FromString("magenta"))
	assert.Equal(t, color.Blue, color.FromString(""))
	assert.Equal(t, color.Blue, color.FromString("  not-a-color  "))
}

func TestFromStringTrimsWhitespace(t *testing.T) {
	assert.Equal(t, color.Red, color.FromString("  red  "))
}

func TestStringRoundTrips(t *testing.T) {
	for _, c := range []color.Color{
		color.Blue, color.Red, color.Cyan, color.Purple, color.Green,
		color.Orange, color.Pink, color.Grey, color.Lightblue, color.Brown,
	} {
		assert.Equal(t, c, color.FromString(c.String()))
	}
}
