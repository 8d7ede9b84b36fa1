package engine

import (
	"math"
	"strings"

	"github.com/atelier-tools/sift/pkg/domain"
)

// opacityTolerance absorbs floating rounding on percentage-scaled fields
// after the *100 conversion.
const opacityTolerance = 0.01

// compareNumbers implements the numeric comparison family. Equality uses
// an absolute-difference tolerance; larger/smaller are strict. A NaN on
// either side never matches.
func compareNumbers(nodeValue, value float64, cmp domain.Comparison, tolerance float64) bool {
	switch cmp {
	case domain.CompareEquals:
		return math.Abs(nodeValue-value) <= tolerance
	case domain.CompareDoesNotEqual:
		return math.Abs(nodeValue-value) > tolerance
	case domain.CompareLargerThan:
		return nodeValue > value
	case domain.CompareSmallerThan:
		return nodeValue < value
	}
	return false
}

// compareStrings implements exact and substring comparisons. Regex
// matching is handled by the compiled filter, not here.
func compareStrings(nodeValue, value string, cmp domain.Comparison) bool {
	switch cmp {
	case domain.CompareEquals:
		return nodeValue == value
	case domain.CompareDoesNotEqual:
		return nodeValue != value
	case domain.CompareContains:
		return strings.Contains(nodeValue, value)
	case domain.CompareDoesNotContain:
		return !strings.Contains(nodeValue, value)
	}
	return false
}

// compareColor compares a node color against a normalized hex literal.
func compareColor(c domain.RGB, hex string, cmp domain.Comparison) bool {
	switch cmp {
	case domain.CompareEquals:
		return c.Hex() == hex
	case domain.CompareDoesNotEqual:
		return c.Hex() != hex
	}
	return false
}

// compareFills implements the paint-kind comparison family over a fills
// list: solid color match, or presence of a gradient/image/video paint.
func compareFills(paints []domain.Paint, hex string, cmp domain.Comparison) bool {
	switch cmp {
	case domain.CompareIsOfColor:
		return anyPaint(paints, func(p domain.Paint) bool {
			return p.Kind == domain.PaintSolid && p.Color.Hex() == hex
		})
	case domain.CompareIsGradient:
		return anyPaint(paints, func(p domain.Paint) bool { return p.Kind.IsGradient() })
	case domain.CompareIsImage:
		return anyPaint(paints, func(p domain.Paint) bool { return p.Kind == domain.PaintImage })
	case domain.CompareIsVideo:
		return anyPaint(paints, func(p domain.Paint) bool { return p.Kind == domain.PaintVideo })
	}
	return false
}

// compareStrokes matches a stroke list against a hex literal: equals is
// satisfied by any solid stroke of that color, does-not-equal by the
// absence of one.
func compareStrokes(paints []domain.Paint, hex string, cmp domain.Comparison) bool {
	solidMatch := anyPaint(paints, func(p domain.Paint) bool {
		return p.Kind == domain.PaintSolid && p.Color.Hex() == hex
	})
	switch cmp {
	case domain.CompareEquals:
		return solidMatch
	case domain.CompareDoesNotEqual:
		return !solidMatch
	}
	return false
}

func anyPaint(paints []domain.Paint, pred func(domain.Paint) bool) bool {
	for _, p := range paints {
		if pred(p) {
			return true
		}
	}
	return false
}
