package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-tools/sift/pkg/domain"
)

func TestCompareNumbers(t *testing.T) {
	assert.True(t, compareNumbers(100, 100, domain.CompareEquals, 0))
	assert.False(t, compareNumbers(100, 101, domain.CompareEquals, 0))
	assert.True(t, compareNumbers(100, 101, domain.CompareDoesNotEqual, 0))
	assert.True(t, compareNumbers(101, 100, domain.CompareLargerThan, 0))
	assert.False(t, compareNumbers(100, 100, domain.CompareLargerThan, 0))
	assert.True(t, compareNumbers(99, 100, domain.CompareSmallerThan, 0))

	// Tolerance applies to equality only.
	assert.True(t, compareNumbers(0.661, 0.66, domain.CompareEquals, 0.01))
	assert.False(t, compareNumbers(0.661, 0.64, domain.CompareEquals, 0.01))
	assert.True(t, compareNumbers(0.661, 0.64, domain.CompareDoesNotEqual, 0.01))

	// NaN never matches, not even does-not-equal via comparison abuse.
	assert.False(t, compareNumbers(100, math.NaN(), domain.CompareEquals, 0))
	assert.False(t, compareNumbers(100, math.NaN(), domain.CompareLargerThan, 0))

	// Unsupported operator for numbers.
	assert.False(t, compareNumbers(100, 100, domain.CompareContains, 0))
}

func TestCompareStrings(t *testing.T) {
	assert.True(t, compareStrings("Icon/Home", "Icon/Home", domain.CompareEquals))
	assert.False(t, compareStrings("Icon/Home", "icon/home", domain.CompareEquals))
	assert.True(t, compareStrings("Icon/Home", "Home", domain.CompareContains))
	assert.True(t, compareStrings("Icon/Home", "Settings", domain.CompareDoesNotContain))
	assert.False(t, compareStrings("Icon/Home", "Icon", domain.CompareDoesNotContain))
}

func TestCompareColor(t *testing.T) {
	red := domain.RGB{R: 1}
	assert.True(t, compareColor(red, "FF0000", domain.CompareEquals))
	assert.False(t, compareColor(red, "00FF00", domain.CompareEquals))
	assert.True(t, compareColor(red, "00FF00", domain.CompareDoesNotEqual))
	// Color comparisons ignore ordering operators.
	assert.False(t, compareColor(red, "FF0000", domain.CompareLargerThan))
}

func TestCompareFills(t *testing.T) {
	fills := []domain.Paint{
		{Kind: domain.PaintSolid, Color: domain.RGB{R: 1}},
		{Kind: domain.PaintGradientLinear},
	}
	assert.True(t, compareFills(fills, "FF0000", domain.CompareIsOfColor))
	assert.False(t, compareFills(fills, "0000FF", domain.CompareIsOfColor))
	assert.True(t, compareFills(fills, "", domain.CompareIsGradient))
	assert.False(t, compareFills(fills, "", domain.CompareIsImage))
	assert.False(t, compareFills(nil, "", domain.CompareIsGradient))

	video := []domain.Paint{{Kind: domain.PaintVideo}}
	assert.True(t, compareFills(video, "", domain.CompareIsVideo))
}

func TestCompareStrokes(t *testing.T) {
	strokes := []domain.Paint{{Kind: domain.PaintSolid, Color: domain.RGB{G: 1}}}
	assert.True(t, compareStrokes(strokes, "00FF00", domain.CompareEquals))
	assert.False(t, compareStrokes(strokes, "FF0000", domain.CompareEquals))
	assert.True(t, compareStrokes(strokes, "FF0000", domain.CompareDoesNotEqual))
	// An empty stroke list differs from every color.
	assert.True(t, compareStrokes(nil, "FF0000", domain.CompareDoesNotEqual))
}
