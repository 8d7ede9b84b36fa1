package engine

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/atelier-tools/sift/pkg/domain"
)

// compiledFilter is a Filter with its literal value pre-processed:
// numeric parse (NaN when not a number, so numeric rules never match),
// normalized hex, and the compiled regex for fits-regex.
type compiledFilter struct {
	domain.Filter
	number float64
	hex    string
	regex  *regexp.Regexp
}

func compileFilter(f domain.Filter) (*compiledFilter, error) {
	cf := &compiledFilter{Filter: f, hex: domain.NormalizeHex(f.Value)}
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64); err == nil {
		cf.number = v
	} else {
		cf.number = math.NaN()
	}
	if f.Comparison == domain.CompareFitsRegex {
		re, err := regexp.Compile(f.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for %s: %w", f.Key, err)
		}
		cf.regex = re
	}
	return cf, nil
}

// Evaluate runs a single filter against a node. It is deterministic and
// side-effect-free; the only error is a malformed regex literal, which is
// a caller-level failure rather than a silent no-match.
func Evaluate(n *domain.Node, f domain.Filter) (bool, error) {
	cf, err := compileFilter(f)
	if err != nil {
		return false, err
	}
	return evaluate(n, cf), nil
}

// evaluate dispatches on the attribute key. Unknown keys, attributes
// absent on the node kind (unless a default-to-zero rule applies) and
// invalid operator pairings all evaluate to false, never an error.
func evaluate(n *domain.Node, f *compiledFilter) bool {
	rule, ok := rules[f.Key]
	if !ok {
		return false
	}
	return rule(n, f)
}

type evalFunc func(*domain.Node, *compiledFilter) bool

// rules is the attribute dispatch table: one row per supported key,
// pairing the accessor with its comparator and absence policy.
var rules = map[domain.AttributeKey]evalFunc{
	domain.KeyWidth: func(n *domain.Node, f *compiledFilter) bool {
		return n.Layout != nil && compareNumbers(n.Layout.Width, f.number, f.Comparison, 0)
	},
	domain.KeyHeight: func(n *domain.Node, f *compiledFilter) bool {
		return n.Layout != nil && compareNumbers(n.Layout.Height, f.number, f.Comparison, 0)
	},
	domain.KeyX: func(n *domain.Node, f *compiledFilter) bool {
		return n.Layout != nil && compareNumbers(n.Layout.X, f.number, f.Comparison, 0)
	},
	domain.KeyY: func(n *domain.Node, f *compiledFilter) bool {
		return n.Layout != nil && compareNumbers(n.Layout.Y, f.number, f.Comparison, 0)
	},
	domain.KeyRotation: func(n *domain.Node, f *compiledFilter) bool {
		return n.Rotation != nil && compareNumbers(*n.Rotation, f.number, f.Comparison, 0)
	},

	domain.KeyLayerName: func(n *domain.Node, f *compiledFilter) bool {
		return matchString(n.Name, f)
	},
	domain.KeyPageName: func(n *domain.Node, f *compiledFilter) bool {
		return matchString(n.PageName(), f)
	},

	domain.KeyRounding: func(n *domain.Node, f *compiledFilter) bool {
		if n.Corner == nil {
			// Shapes without a rounding concept compare as zero so
			// "rounding = 0" still matches them.
			return compareNumbers(0, f.number, f.Comparison, 0)
		}
		if v, ok := n.Corner.Uniform(); ok {
			return compareNumbers(v, f.number, f.Comparison, 0)
		}
		return f.Comparison == domain.CompareEquals && f.Value == domain.MixedLiteral
	},
	domain.KeyCornerRadiusTopLeft:     cornerRule(func(c *domain.CornerRadii) float64 { return c.TopLeft }),
	domain.KeyCornerRadiusTopRight:    cornerRule(func(c *domain.CornerRadii) float64 { return c.TopRight }),
	domain.KeyCornerRadiusBottomLeft:  cornerRule(func(c *domain.CornerRadii) float64 { return c.BottomLeft }),
	domain.KeyCornerRadiusBottomRight: cornerRule(func(c *domain.CornerRadii) float64 { return c.BottomRight }),

	domain.KeyFill: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && compareFills(n.Geometry.Fills, f.hex, f.Comparison)
	},
	domain.KeyStroke: func(n *domain.Node, f *compiledFilter) bool {
		weight := 0.0
		if n.Geometry != nil {
			weight = n.Geometry.StrokeWeight
		}
		return compareNumbers(weight, f.number, f.Comparison, 0)
	},
	domain.KeyStrokeColor: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && compareStrokes(n.Geometry.Strokes, f.hex, f.Comparison)
	},

	domain.KeyOpacity: func(n *domain.Node, f *compiledFilter) bool {
		return n.Opacity != nil && compareNumbers(*n.Opacity, f.number/100, f.Comparison, opacityTolerance)
	},
	domain.KeyBlendMode: func(n *domain.Node, f *compiledFilter) bool {
		return n.BlendMode != "" && compareStrings(n.BlendMode, f.Value, f.Comparison)
	},

	domain.KeyFillsBlendMode: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && anyPaint(n.Geometry.Fills, func(p domain.Paint) bool {
			return compareStrings(p.BlendMode, f.Value, f.Comparison)
		})
	},
	domain.KeyFillsOpacity: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && anyPaintOpacity(n.Geometry.Fills, f)
	},
	domain.KeyFillsVisibility: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && anyPaintVisibility(n.Geometry.Fills, f.Comparison)
	},
	domain.KeyStrokesBlendMode: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && anyPaint(n.Geometry.Strokes, func(p domain.Paint) bool {
			return compareStrings(p.BlendMode, f.Value, f.Comparison)
		})
	},
	domain.KeyStrokesOpacity: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && anyPaintOpacity(n.Geometry.Strokes, f)
	},
	domain.KeyStrokesVisibility: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && anyPaintVisibility(n.Geometry.Strokes, f.Comparison)
	},
	domain.KeyStrokesAlign: func(n *domain.Node, f *compiledFilter) bool {
		return n.Geometry != nil && len(n.Geometry.Strokes) > 0 &&
			compareStrings(n.Geometry.StrokeAlign, f.Value, f.Comparison)
	},

	domain.KeyEffectDropShadow:     effectAppliedRule(domain.EffectDropShadow),
	domain.KeyEffectInnerShadow:    effectAppliedRule(domain.EffectInnerShadow),
	domain.KeyEffectLayerBlur:      effectAppliedRule(domain.EffectLayerBlur),
	domain.KeyEffectBackgroundBlur: effectAppliedRule(domain.EffectBackgroundBlur),

	domain.KeyEffectDropShadowPositionX: effectNumberRule(domain.EffectDropShadow, func(e *domain.Effect) float64 { return e.Offset.X }),
	domain.KeyEffectDropShadowPositionY: effectNumberRule(domain.EffectDropShadow, func(e *domain.Effect) float64 { return e.Offset.Y }),
	domain.KeyEffectDropShadowBlur:      effectNumberRule(domain.EffectDropShadow, func(e *domain.Effect) float64 { return e.Radius }),
	domain.KeyEffectDropShadowSpread:    effectNumberRule(domain.EffectDropShadow, func(e *domain.Effect) float64 { return e.Spread }),
	domain.KeyEffectDropShadowColor:     effectColorRule(domain.EffectDropShadow),
	domain.KeyEffectDropShadowBlendMode: effectBlendModeRule(domain.EffectDropShadow),

	domain.KeyEffectInnerShadowPositionX: effectNumberRule(domain.EffectInnerShadow, func(e *domain.Effect) float64 { return e.Offset.X }),
	domain.KeyEffectInnerShadowPositionY: effectNumberRule(domain.EffectInnerShadow, func(e *domain.Effect) float64 { return e.Offset.Y }),
	domain.KeyEffectInnerShadowBlur:      effectNumberRule(domain.EffectInnerShadow, func(e *domain.Effect) float64 { return e.Radius }),
	domain.KeyEffectInnerShadowSpread:    effectNumberRule(domain.EffectInnerShadow, func(e *domain.Effect) float64 { return e.Spread }),
	domain.KeyEffectInnerShadowColor:     effectColorRule(domain.EffectInnerShadow),
	domain.KeyEffectInnerShadowBlendMode: effectBlendModeRule(domain.EffectInnerShadow),

	domain.KeyVisibility: func(n *domain.Node, f *compiledFilter) bool {
		return n.Visible != nil && flagMatch(*n.Visible, f.Comparison, domain.CompareIsVisible, domain.CompareIsNotVisible)
	},
	domain.KeyIsLocked: func(n *domain.Node, f *compiledFilter) bool {
		return n.Locked != nil && flagMatch(*n.Locked, f.Comparison, domain.CompareYes, domain.CompareNo)
	},
	domain.KeyIsMask: func(n *domain.Node, f *compiledFilter) bool {
		return n.IsMask != nil && flagMatch(*n.IsMask, f.Comparison, domain.CompareYes, domain.CompareNo)
	},
	domain.KeyExportSetting: func(n *domain.Node, f *compiledFilter) bool {
		return flagMatch(len(n.ExportPresets) > 0, f.Comparison, domain.CompareIsApplied, domain.CompareIsNotApplied)
	},
	domain.KeyOverridenProps: func(n *domain.Node, f *compiledFilter) bool {
		has := n.Kind == domain.KindInstance && len(n.Overrides) > 0
		return flagMatch(has, f.Comparison, domain.CompareYes, domain.CompareNo)
	},

	domain.KeyFontName: func(n *domain.Node, f *compiledFilter) bool {
		return n.Text != nil && !n.Text.FontMixed && compareStrings(n.Text.FontFamily, f.Value, f.Comparison)
	},
	domain.KeyFontSize: func(n *domain.Node, f *compiledFilter) bool {
		return n.Text != nil && n.Text.FontSize != nil &&
			compareNumbers(*n.Text.FontSize, f.number, f.Comparison, 0)
	},
	domain.KeyFontWeight: func(n *domain.Node, f *compiledFilter) bool {
		if n.Text == nil || n.Text.FontWeight == nil {
			return false
		}
		weight := strconv.FormatFloat(*n.Text.FontWeight, 'f', -1, 64)
		return compareStrings(weight, f.Value, f.Comparison)
	},
	domain.KeyLineHeight: func(n *domain.Node, f *compiledFilter) bool {
		if n.Text == nil || n.Text.LineHeight == nil {
			return false
		}
		lh := n.Text.LineHeight
		if strings.EqualFold(f.Value, "auto") {
			return lh.Unit == domain.UnitAuto
		}
		return lh.Unit != domain.UnitAuto && compareNumbers(lh.Value, f.number, f.Comparison, 0)
	},
	domain.KeyLetterSpacing: func(n *domain.Node, f *compiledFilter) bool {
		return n.Text != nil && n.Text.LetterSpacing != nil &&
			n.Text.LetterSpacing.Unit == domain.UnitPercent &&
			compareNumbers(n.Text.LetterSpacing.Value, f.number, f.Comparison, 0)
	},
	domain.KeyTextAlignH:       textStringRule(func(t *domain.TextStyle) string { return t.AlignHorizontal }),
	domain.KeyTextAlignV:       textStringRule(func(t *domain.TextStyle) string { return t.AlignVertical }),
	domain.KeyTextDecoration:   textStringRule(func(t *domain.TextStyle) string { return t.Decoration }),
	domain.KeyParagraphIndent:  textNumberRule(func(t *domain.TextStyle) float64 { return t.ParagraphIndent }),
	domain.KeyParagraphSpacing: textNumberRule(func(t *domain.TextStyle) float64 { return t.ParagraphSpacing }),

	domain.KeyAutoLayout: func(n *domain.Node, f *compiledFilter) bool {
		if n.AutoLayout == nil {
			return false
		}
		return flagMatch(n.AutoLayout.Mode != domain.LayoutModeNone, f.Comparison,
			domain.CompareIsApplied, domain.CompareIsNotApplied)
	},
	domain.KeyAutoLayoutPosition: func(n *domain.Node, f *compiledFilter) bool {
		return n.AutoLayout != nil && compareStrings(n.AutoLayout.PrimaryAlign, f.Value, f.Comparison)
	},
	domain.KeyAutoLayoutDirection: func(n *domain.Node, f *compiledFilter) bool {
		return n.AutoLayout != nil && compareStrings(n.AutoLayout.Mode, strings.ToUpper(f.Value), f.Comparison)
	},
	domain.KeyAutoLayoutItemSpacing:   layoutNumberRule(func(a *domain.AutoLayout) float64 { return a.ItemSpacing }),
	domain.KeyAutoLayoutPaddingTop:    layoutNumberRule(func(a *domain.AutoLayout) float64 { return a.PaddingTop }),
	domain.KeyAutoLayoutPaddingBottom: layoutNumberRule(func(a *domain.AutoLayout) float64 { return a.PaddingBottom }),
	domain.KeyAutoLayoutPaddingLeft:   layoutNumberRule(func(a *domain.AutoLayout) float64 { return a.PaddingLeft }),
	domain.KeyAutoLayoutPaddingRight:  layoutNumberRule(func(a *domain.AutoLayout) float64 { return a.PaddingRight }),

	domain.KeyNumberOfChildren: func(n *domain.Node, f *compiledFilter) bool {
		return compareNumbers(float64(len(n.Children)), f.number, f.Comparison, 0)
	},
	domain.KeyNumberOfPoints: func(n *domain.Node, f *compiledFilter) bool {
		return n.Kind == domain.KindVector &&
			compareNumbers(float64(vectorPointCount(n)), f.number, f.Comparison, 0)
	},
	domain.KeyNestedLevel: func(n *domain.Node, f *compiledFilter) bool {
		return compareNumbers(float64(n.NestedLevel()), f.number, f.Comparison, 0)
	},

	domain.KeyInteraction: func(n *domain.Node, f *compiledFilter) bool {
		return supportsInteraction(n) && flagMatch(hasInteraction(n), f.Comparison,
			domain.CompareIsApplied, domain.CompareIsNotApplied)
	},
	domain.KeyInteractionTrigger: func(n *domain.Node, f *compiledFilter) bool {
		for _, r := range n.Reactions {
			if r.Trigger == nil {
				continue
			}
			if compareStrings(r.Trigger.Type, f.Value, equalityOnly(f.Comparison)) {
				return true
			}
		}
		return false
	},
	domain.KeyInteractionAction: func(n *domain.Node, f *compiledFilter) bool {
		for _, r := range n.Reactions {
			if r.Action == nil {
				continue
			}
			// NODE actions compare the navigation kind, media actions
			// the media verb, everything else the action type.
			subject := r.Action.Type
			switch r.Action.Type {
			case "NODE":
				subject = r.Action.Navigation
			case "UPDATE_MEDIA_RUNTIME":
				subject = r.Action.MediaAction
			}
			if compareStrings(subject, f.Value, equalityOnly(f.Comparison)) {
				return true
			}
		}
		return false
	},
	domain.KeyFlowStartingPoint: func(n *domain.Node, f *compiledFilter) bool {
		return supportsInteraction(n) && flagMatch(isFlowStartingPoint(n), f.Comparison,
			domain.CompareIsApplied, domain.CompareIsNotApplied)
	},
}

// matchString handles the string family including fits-regex.
func matchString(value string, f *compiledFilter) bool {
	if f.Comparison == domain.CompareFitsRegex {
		return f.regex != nil && f.regex.MatchString(value)
	}
	return compareStrings(value, f.Value, f.Comparison)
}

// flagMatch maps a boolean attribute onto its positive/negative operator
// pair; any other operator is an invalid pairing and never matches.
func flagMatch(value bool, cmp, positive, negative domain.Comparison) bool {
	switch cmp {
	case positive:
		return value
	case negative:
		return !value
	}
	return false
}

// equalityOnly restricts an operator to the equality pair, so reaction
// scans never accidentally honor substring operators.
func equalityOnly(cmp domain.Comparison) domain.Comparison {
	if cmp == domain.CompareEquals || cmp == domain.CompareDoesNotEqual {
		return cmp
	}
	return domain.Comparison("")
}

func cornerRule(pick func(*domain.CornerRadii) float64) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		return n.Corner != nil && compareNumbers(pick(n.Corner), f.number, f.Comparison, 0)
	}
}

func effectAppliedRule(kind domain.EffectKind) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		return flagMatch(hasEffect(n, kind), f.Comparison,
			domain.CompareIsApplied, domain.CompareIsNotApplied)
	}
}

func effectNumberRule(kind domain.EffectKind, pick func(*domain.Effect) float64) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		e := firstEffect(n, kind)
		return e != nil && compareNumbers(pick(e), f.number, f.Comparison, 0)
	}
}

func effectColorRule(kind domain.EffectKind) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		e := firstEffect(n, kind)
		return e != nil && compareColor(e.Color.RGB(), f.hex, f.Comparison)
	}
}

func effectBlendModeRule(kind domain.EffectKind) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		e := firstEffect(n, kind)
		return e != nil && compareStrings(e.BlendMode, f.Value, f.Comparison)
	}
}

func textStringRule(pick func(*domain.TextStyle) string) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		return n.Text != nil && pick(n.Text) != "" && compareStrings(pick(n.Text), f.Value, f.Comparison)
	}
}

func textNumberRule(pick func(*domain.TextStyle) float64) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		return n.Text != nil && compareNumbers(pick(n.Text), f.number, f.Comparison, 0)
	}
}

func layoutNumberRule(pick func(*domain.AutoLayout) float64) evalFunc {
	return func(n *domain.Node, f *compiledFilter) bool {
		return n.AutoLayout != nil && compareNumbers(pick(n.AutoLayout), f.number, f.Comparison, 0)
	}
}

func anyPaintOpacity(paints []domain.Paint, f *compiledFilter) bool {
	return anyPaint(paints, func(p domain.Paint) bool {
		if p.Opacity == nil {
			return false
		}
		return compareNumbers(*p.Opacity, f.number/100, f.Comparison, opacityTolerance)
	})
}

func anyPaintVisibility(paints []domain.Paint, cmp domain.Comparison) bool {
	return anyPaint(paints, func(p domain.Paint) bool {
		return flagMatch(p.IsVisible(), cmp, domain.CompareIsVisible, domain.CompareIsNotVisible)
	})
}
