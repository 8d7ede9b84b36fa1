package domain

// NodeKind identifies the concrete type of a scene node.
// Attribute presence is determined solely by kind: accessors check the
// optional attribute groups and never assume one exists.
type NodeKind string

const (
	KindPage             NodeKind = "PAGE"
	KindFrame            NodeKind = "FRAME"
	KindGroup            NodeKind = "GROUP"
	KindSection          NodeKind = "SECTION"
	KindComponent        NodeKind = "COMPONENT"
	KindComponentSet     NodeKind = "COMPONENT_SET"
	KindInstance         NodeKind = "INSTANCE"
	KindText             NodeKind = "TEXT"
	KindVector           NodeKind = "VECTOR"
	KindRectangle        NodeKind = "RECTANGLE"
	KindEllipse          NodeKind = "ELLIPSE"
	KindPolygon          NodeKind = "POLYGON"
	KindStar             NodeKind = "STAR"
	KindLine             NodeKind = "LINE"
	KindSlice            NodeKind = "SLICE"
	KindBooleanOperation NodeKind = "BOOLEAN_OPERATION"
)

// Boolean operation subtypes for KindBooleanOperation nodes.
const (
	BooleanUnion     = "UNION"
	BooleanSubtract  = "SUBTRACT"
	BooleanIntersect = "INTERSECT"
	BooleanExclude   = "EXCLUDE"
)

// Layout holds the geometry attributes of nodes that participate in layout.
type Layout struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
}

// CornerRadii holds per-corner rounding. A node with rounding support
// always carries all four values.
type CornerRadii struct {
	TopLeft     float64 `json:"top_left" yaml:"top_left"`
	TopRight    float64 `json:"top_right" yaml:"top_right"`
	BottomLeft  float64 `json:"bottom_left" yaml:"bottom_left"`
	BottomRight float64 `json:"bottom_right" yaml:"bottom_right"`
}

// Uniform reports the single corner radius, or false when the four
// corners disagree (the "Mixed" case).
func (c CornerRadii) Uniform() (float64, bool) {
	if c.TopLeft == c.TopRight && c.TopLeft == c.BottomLeft && c.TopLeft == c.BottomRight {
		return c.TopLeft, true
	}
	return 0, false
}

// PaintKind tags the variant of a paint entry.
type PaintKind string

const (
	PaintSolid           PaintKind = "SOLID"
	PaintGradientLinear  PaintKind = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintKind = "GRADIENT_RADIAL"
	PaintGradientAngular PaintKind = "GRADIENT_ANGULAR"
	PaintGradientDiamond PaintKind = "GRADIENT_DIAMOND"
	PaintImage           PaintKind = "IMAGE"
	PaintVideo           PaintKind = "VIDEO"
)

// IsGradient reports whether the paint kind is any of the gradient variants.
func (k PaintKind) IsGradient() bool {
	switch k {
	case PaintGradientLinear, PaintGradientRadial, PaintGradientAngular, PaintGradientDiamond:
		return true
	}
	return false
}

// Paint is one entry of a fills or strokes list.
// Opacity and Visible are optional: a nil Opacity means fully opaque
// (100%), a nil Visible means visible.
type Paint struct {
	Kind      PaintKind `json:"kind" yaml:"kind"`
	Color     RGB       `json:"color" yaml:"color"`
	Opacity   *float64  `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	BlendMode string    `json:"blend_mode,omitempty" yaml:"blend_mode,omitempty"`
	Visible   *bool     `json:"visible,omitempty" yaml:"visible,omitempty"`
}

// EffectiveOpacity resolves the optional opacity to the 0..100 scale.
func (p Paint) EffectiveOpacity() float64 {
	if p.Opacity == nil {
		return 100
	}
	return *p.Opacity * 100
}

// IsVisible resolves the optional visibility flag.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Geometry groups the paint-related attributes. Presence of the group
// means the node kind supports fills and strokes; an empty slice means
// the attribute exists but carries no paint.
type Geometry struct {
	Fills        []Paint `json:"fills" yaml:"fills"`
	Strokes      []Paint `json:"strokes" yaml:"strokes"`
	StrokeWeight float64 `json:"stroke_weight" yaml:"stroke_weight"`
	StrokeAlign  string  `json:"stroke_align,omitempty" yaml:"stroke_align,omitempty"`
}

// Unit tags a unit-valued numeric attribute.
type Unit string

const (
	UnitPixels  Unit = "PIXELS"
	UnitPercent Unit = "PERCENT"
	UnitAuto    Unit = "AUTO"
)

// UnitValue is a number paired with its unit (line height, letter spacing).
type UnitValue struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  Unit    `json:"unit" yaml:"unit"`
}

// TextStyle groups the typographic attributes of text nodes.
// FontMixed marks a composite text node whose ranges use different fonts.
type TextStyle struct {
	FontFamily       string     `json:"font_family" yaml:"font_family"`
	FontMixed        bool       `json:"font_mixed,omitempty" yaml:"font_mixed,omitempty"`
	FontSize         *float64   `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	FontWeight       *float64   `json:"font_weight,omitempty" yaml:"font_weight,omitempty"`
	LineHeight       *UnitValue `json:"line_height,omitempty" yaml:"line_height,omitempty"`
	LetterSpacing    *UnitValue `json:"letter_spacing,omitempty" yaml:"letter_spacing,omitempty"`
	AlignHorizontal  string     `json:"align_horizontal,omitempty" yaml:"align_horizontal,omitempty"`
	AlignVertical    string     `json:"align_vertical,omitempty" yaml:"align_vertical,omitempty"`
	Decoration       string     `json:"decoration,omitempty" yaml:"decoration,omitempty"`
	ParagraphIndent  float64    `json:"paragraph_indent,omitempty" yaml:"paragraph_indent,omitempty"`
	ParagraphSpacing float64    `json:"paragraph_spacing,omitempty" yaml:"paragraph_spacing,omitempty"`
}

// Auto-layout modes.
const (
	LayoutModeNone       = "NONE"
	LayoutModeHorizontal = "HORIZONTAL"
	LayoutModeVertical   = "VERTICAL"
)

// AutoLayout groups the auto-layout attributes of container nodes.
type AutoLayout struct {
	Mode          string  `json:"mode" yaml:"mode"`
	PrimaryAlign  string  `json:"primary_align,omitempty" yaml:"primary_align,omitempty"`
	ItemSpacing   float64 `json:"item_spacing,omitempty" yaml:"item_spacing,omitempty"`
	PaddingTop    float64 `json:"padding_top,omitempty" yaml:"padding_top,omitempty"`
	PaddingBottom float64 `json:"padding_bottom,omitempty" yaml:"padding_bottom,omitempty"`
	PaddingLeft   float64 `json:"padding_left,omitempty" yaml:"padding_left,omitempty"`
	PaddingRight  float64 `json:"padding_right,omitempty" yaml:"padding_right,omitempty"`
}

// EffectKind tags the variant of an effect entry.
type EffectKind string

const (
	EffectDropShadow     EffectKind = "DROP_SHADOW"
	EffectInnerShadow    EffectKind = "INNER_SHADOW"
	EffectLayerBlur      EffectKind = "LAYER_BLUR"
	EffectBackgroundBlur EffectKind = "BACKGROUND_BLUR"
)

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Effect is one entry of an effects list.
type Effect struct {
	Kind      EffectKind `json:"kind" yaml:"kind"`
	Offset    Vector     `json:"offset,omitempty" yaml:"offset,omitempty"`
	Radius    float64    `json:"radius,omitempty" yaml:"radius,omitempty"`
	Spread    float64    `json:"spread,omitempty" yaml:"spread,omitempty"`
	Color     RGBA       `json:"color,omitempty" yaml:"color,omitempty"`
	BlendMode string     `json:"blend_mode,omitempty" yaml:"blend_mode,omitempty"`
}

// Reaction is a prototyping interaction attached to a node.
type Reaction struct {
	Trigger *ReactionTrigger `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Action  *ReactionAction  `json:"action,omitempty" yaml:"action,omitempty"`
}

// ReactionTrigger describes what starts the interaction (ON_CLICK, ...).
type ReactionTrigger struct {
	Type string `json:"type" yaml:"type"`
}

// ReactionAction describes the effect of the interaction. For NODE
// actions the Navigation field carries the navigation kind; for
// UPDATE_MEDIA_RUNTIME actions MediaAction carries the media verb.
type ReactionAction struct {
	Type        string `json:"type" yaml:"type"`
	Navigation  string `json:"navigation,omitempty" yaml:"navigation,omitempty"`
	MediaAction string `json:"media_action,omitempty" yaml:"media_action,omitempty"`
}

// Node is a single element of the host document tree. The host owns the
// node's lifecycle; the engine never creates or destroys one except by
// requesting it through the document port.
type Node struct {
	ID   string   `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
	Kind NodeKind `json:"kind" yaml:"kind"`

	// BooleanOperation is the subtype for KindBooleanOperation nodes.
	BooleanOperation string `json:"boolean_operation,omitempty" yaml:"boolean_operation,omitempty"`

	// Children are ordered and owned; parent is a weak back reference
	// maintained by Attach/AppendChild.
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
	parent   *Node

	Visible  *bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
	Locked   *bool    `json:"locked,omitempty" yaml:"locked,omitempty"`
	IsMask   *bool    `json:"is_mask,omitempty" yaml:"is_mask,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Rotation *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`

	// BlendMode is empty when the node kind has no blend mode.
	BlendMode string `json:"blend_mode,omitempty" yaml:"blend_mode,omitempty"`

	Layout     *Layout      `json:"layout,omitempty" yaml:"layout,omitempty"`
	Corner     *CornerRadii `json:"corner,omitempty" yaml:"corner,omitempty"`
	Geometry   *Geometry    `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	Text       *TextStyle   `json:"text,omitempty" yaml:"text,omitempty"`
	AutoLayout *AutoLayout  `json:"auto_layout,omitempty" yaml:"auto_layout,omitempty"`

	Effects   []Effect   `json:"effects,omitempty" yaml:"effects,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty" yaml:"reactions,omitempty"`

	// ExportPresets are the node's saved export configurations.
	ExportPresets []ExportPreset `json:"export_presets,omitempty" yaml:"export_presets,omitempty"`

	// Overrides lists overridden property names on instance nodes.
	Overrides []string `json:"overrides,omitempty" yaml:"overrides,omitempty"`

	// VectorPaths holds raw path data for vector nodes. Each path
	// contributes len(fields)/3 points.
	VectorPaths []string `json:"vector_paths,omitempty" yaml:"vector_paths,omitempty"`

	// FlowStartingPoints lists node IDs registered as prototype flow
	// starts. Only meaningful on KindPage nodes.
	FlowStartingPoints []string `json:"flow_starting_points,omitempty" yaml:"flow_starting_points,omitempty"`
}

// Parent returns the navigation-only parent reference, nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// AppendChild adds c as the last child of n and fixes its parent link.
func (n *Node) AppendChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Detach removes n from its parent's child list. It is the building
// block for host-side delete; the engine calls it only through the
// document port.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Link walks the subtree and repairs parent references. Loaders call it
// once after unmarshalling, since back references do not serialize.
func (n *Node) Link() {
	for _, c := range n.Children {
		c.parent = n
		c.Link()
	}
}

// Page walks the parent chain and returns the owning page node, or nil
// when the node is not attached to a page.
func (n *Node) Page() *Node {
	cur := n
	for cur != nil && cur.Kind != KindPage {
		cur = cur.parent
	}
	return cur
}

// PageName returns the owning page's name, or "" when detached.
func (n *Node) PageName() string {
	if p := n.Page(); p != nil {
		return p.Name
	}
	return ""
}

// NestedLevel counts the steps from the node up to (exclusive) its page.
// A node sitting directly on a page is at level 0.
func (n *Node) NestedLevel() int {
	level := 0
	cur := n
	for cur.parent != nil && cur.parent.Kind != KindPage {
		level++
		cur = cur.parent
	}
	return level
}

// Document is the root of the host tree: an ordered list of pages plus
// the document-level style and variable collections.
type Document struct {
	Name      string               `json:"name" yaml:"name"`
	Pages     []*Node              `json:"pages" yaml:"pages"`
	Styles    []Style              `json:"styles,omitempty" yaml:"styles,omitempty"`
	Variables []VariableCollection `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Link repairs parent references below every page.
func (d *Document) Link() {
	for _, p := range d.Pages {
		p.Link()
	}
}
