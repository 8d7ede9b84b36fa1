package domain

// AttributeKey names one of the supported node attributes a filter can
// target. The set is closed; it is not a query language.
type AttributeKey string

const (
	KeyWidth    AttributeKey = "width"
	KeyHeight   AttributeKey = "height"
	KeyX        AttributeKey = "x"
	KeyY        AttributeKey = "y"
	KeyRotation AttributeKey = "rotation"

	KeyLayerName AttributeKey = "layer-name"
	KeyPageName  AttributeKey = "page-name"

	KeyRounding                AttributeKey = "appearance-rounding"
	KeyCornerRadiusTopLeft     AttributeKey = "corner-radius-top-left"
	KeyCornerRadiusTopRight    AttributeKey = "corner-radius-top-right"
	KeyCornerRadiusBottomLeft  AttributeKey = "corner-radius-bottom-left"
	KeyCornerRadiusBottomRight AttributeKey = "corner-radius-bottom-right"

	KeyFill              AttributeKey = "fill"
	KeyFillsBlendMode    AttributeKey = "fills-blendmode"
	KeyFillsOpacity      AttributeKey = "fills-opacity"
	KeyFillsVisibility   AttributeKey = "fills-visibility"
	KeyStroke            AttributeKey = "stroke"
	KeyStrokeColor       AttributeKey = "stroke-color"
	KeyStrokesBlendMode  AttributeKey = "strokes-blendmode"
	KeyStrokesOpacity    AttributeKey = "strokes-opacity"
	KeyStrokesVisibility AttributeKey = "strokes-visibility"
	KeyStrokesAlign      AttributeKey = "strokes-align"

	KeyOpacity   AttributeKey = "appearance-opacity"
	KeyBlendMode AttributeKey = "appearance-blendmode"

	KeyEffectDropShadow           AttributeKey = "effect-drop_shadow"
	KeyEffectInnerShadow          AttributeKey = "effect-inner_shadow"
	KeyEffectLayerBlur            AttributeKey = "effect-layer_blur"
	KeyEffectBackgroundBlur       AttributeKey = "effect-background_blur"
	KeyEffectDropShadowPositionX  AttributeKey = "effect-drop_shadow-positionx"
	KeyEffectDropShadowPositionY  AttributeKey = "effect-drop_shadow-positiony"
	KeyEffectDropShadowBlur       AttributeKey = "effect-drop_shadow-blur"
	KeyEffectDropShadowSpread     AttributeKey = "effect-drop_shadow-spread"
	KeyEffectDropShadowColor      AttributeKey = "effect-drop_shadow-color"
	KeyEffectDropShadowBlendMode  AttributeKey = "effect-drop_shadow-blendmode"
	KeyEffectInnerShadowPositionX AttributeKey = "effect-inner_shadow-positionx"
	KeyEffectInnerShadowPositionY AttributeKey = "effect-inner_shadow-positiony"
	KeyEffectInnerShadowBlur      AttributeKey = "effect-inner_shadow-blur"
	KeyEffectInnerShadowSpread    AttributeKey = "effect-inner_shadow-spread"
	KeyEffectInnerShadowColor     AttributeKey = "effect-inner_shadow-color"
	KeyEffectInnerShadowBlendMode AttributeKey = "effect-inner_shadow-blendmode"

	KeyFontName         AttributeKey = "font-name"
	KeyFontSize         AttributeKey = "font-size"
	KeyFontWeight       AttributeKey = "font-weight"
	KeyLineHeight       AttributeKey = "line-height"
	KeyLetterSpacing    AttributeKey = "letter-spacing"
	KeyTextAlignH       AttributeKey = "text-horizontal-align"
	KeyTextAlignV       AttributeKey = "text-vertical-align"
	KeyTextDecoration   AttributeKey = "text-decoration"
	KeyParagraphIndent  AttributeKey = "paragraph-indent"
	KeyParagraphSpacing AttributeKey = "paragraph-spacing"

	KeyAutoLayout              AttributeKey = "autolayout"
	KeyAutoLayoutPosition      AttributeKey = "autolayout-position"
	KeyAutoLayoutDirection     AttributeKey = "autolayout-direction"
	KeyAutoLayoutItemSpacing   AttributeKey = "autolayout-item-spacing"
	KeyAutoLayoutPaddingTop    AttributeKey = "autolayout-padding-top"
	KeyAutoLayoutPaddingBottom AttributeKey = "autolayout-padding-bottom"
	KeyAutoLayoutPaddingLeft   AttributeKey = "autolayout-padding-left"
	KeyAutoLayoutPaddingRight  AttributeKey = "autolayout-padding-right"

	KeyNumberOfChildren AttributeKey = "number-of-children"
	KeyNumberOfPoints   AttributeKey = "number-of-points"
	KeyNestedLevel      AttributeKey = "nested-level"

	KeyVisibility     AttributeKey = "visibility"
	KeyIsLocked       AttributeKey = "is-locked"
	KeyIsMask         AttributeKey = "is-mask"
	KeyExportSetting  AttributeKey = "export-setting"
	KeyOverridenProps AttributeKey = "overriden-properties"

	KeyInteraction        AttributeKey = "interaction"
	KeyInteractionTrigger AttributeKey = "interaction-trigger"
	KeyInteractionAction  AttributeKey = "interaction-action"
	KeyFlowStartingPoint  AttributeKey = "flow-starting-point"
)

// Comparison is the closed set of comparison operators. Not every
// operator is valid for every attribute; invalid pairings evaluate to
// false rather than erroring.
type Comparison string

const (
	CompareEquals         Comparison = "equals"
	CompareDoesNotEqual   Comparison = "does-not-equal"
	CompareLargerThan     Comparison = "is-larger-than"
	CompareSmallerThan    Comparison = "is-smaller-than"
	CompareContains       Comparison = "contains"
	CompareDoesNotContain Comparison = "does-not-contain"
	CompareFitsRegex      Comparison = "fits-regex"
	CompareIsOfColor      Comparison = "is-of-color"
	CompareIsGradient     Comparison = "is-gradient"
	CompareIsImage        Comparison = "is-image"
	CompareIsVideo        Comparison = "is-video"
	CompareIsApplied      Comparison = "is-applied"
	CompareIsNotApplied   Comparison = "is-not-applied"
	CompareIsVisible      Comparison = "is-visible"
	CompareIsNotVisible   Comparison = "is-not-visible"
	CompareYes            Comparison = "yes"
	CompareNo             Comparison = "no"
)

// Logic tags how a filter's result combines with the running accumulator.
type Logic string

const (
	LogicAnd Logic = "AND"
	LogicOr  Logic = "OR"
)

// MixedLiteral is the literal value that matches a heterogeneous corner
// radius under the equals comparison.
const MixedLiteral = "Mixed"

// Filter is one immutable condition of a query. Order matters inside a
// filter set: the fold is left-to-right and Logic combines with the
// running accumulator, not pairwise.
type Filter struct {
	Key        AttributeKey `json:"key" yaml:"key" mapstructure:"key"`
	Comparison Comparison   `json:"comparison" yaml:"comparison" mapstructure:"comparison"`
	Value      string       `json:"value" yaml:"value" mapstructure:"value"`
	Logic      Logic        `json:"logic" yaml:"logic" mapstructure:"logic"`
}
