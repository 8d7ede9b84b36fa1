package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexRounding(t *testing.T) {
	assert.Equal(t, "FF0000", RGB{R: 1}.Hex())
	assert.Equal(t, "000000", RGB{}.Hex())
	assert.Equal(t, "FFFFFF", RGB{R: 1, G: 1, B: 1}.Hex())

	// 0.5 * 255 + 0.5 = 128.0, truncated to 128.
	assert.Equal(t, "808080", RGB{R: 0.5, G: 0.5, B: 0.5}.Hex())

	// Out-of-range channels clamp instead of wrapping.
	assert.Equal(t, "FF0000", RGB{R: 1.2, G: -0.3}.Hex())
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "FF0000", NormalizeHex("#ff0000"))
	assert.Equal(t, "AB12CD", NormalizeHex("ab12cd"))
}

func TestRGBADropAlpha(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 0.25}
	assert.Equal(t, RGB{R: 1, G: 0.5, B: 0}, c.RGB())
}
