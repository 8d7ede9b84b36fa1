package engine

import (
	"strings"

	"github.com/atelier-tools/sift/pkg/domain"
)

// notApplicable is reported by Inspect for attributes a node kind does
// not carry.
const notApplicable = "N/A"

// vectorPointCount counts path points on vector nodes. Each path datum
// contributes one point per three whitespace-separated fields.
func vectorPointCount(n *domain.Node) int {
	if n.Kind != domain.KindVector {
		return 0
	}
	total := 0
	for _, path := range n.VectorPaths {
		total += len(strings.Fields(path)) / 3
	}
	return total
}

// hasEffect reports whether any effect entry carries the kind.
func hasEffect(n *domain.Node, kind domain.EffectKind) bool {
	return firstEffect(n, kind) != nil
}

// firstEffect returns the first effect of the kind, or nil. Sub-property
// filters (offset, blur, spread, color, blend mode) read this entry.
func firstEffect(n *domain.Node, kind domain.EffectKind) *domain.Effect {
	for i := range n.Effects {
		if n.Effects[i].Kind == kind {
			return &n.Effects[i]
		}
	}
	return nil
}

// supportsInteraction limits interaction and flow attributes to the node
// kinds that can carry prototype wiring.
func supportsInteraction(n *domain.Node) bool {
	switch n.Kind {
	case domain.KindFrame, domain.KindComponent, domain.KindInstance:
		return true
	}
	return false
}

// hasInteraction reports whether any reaction carries an action.
func hasInteraction(n *domain.Node) bool {
	for _, r := range n.Reactions {
		if r.Action != nil {
			return true
		}
	}
	return false
}

// isFlowStartingPoint consults the owning page's starting-point registry.
func isFlowStartingPoint(n *domain.Node) bool {
	page := n.Page()
	if page == nil {
		return false
	}
	for _, id := range page.FlowStartingPoints {
		if id == n.ID {
			return true
		}
	}
	return false
}

// Inspect extracts the display value of a single attribute for the
// single-selection inspection operation. Attributes absent on the node
// kind report "N/A"; heterogeneous corner rounding reports "Mixed";
// fills and strokes report false when the list is empty or unsupported,
// with index 0 authoritative for paint sub-properties.
func Inspect(n *domain.Node, key domain.AttributeKey) any {
	switch key {
	case domain.KeyLayerName:
		return n.Name
	case domain.KeyPageName:
		return n.PageName()
	case domain.KeyWidth:
		if n.Layout != nil {
			return n.Layout.Width
		}
	case domain.KeyHeight:
		if n.Layout != nil {
			return n.Layout.Height
		}
	case domain.KeyX:
		if n.Layout != nil {
			return n.Layout.X
		}
	case domain.KeyY:
		if n.Layout != nil {
			return n.Layout.Y
		}
	case domain.KeyRotation:
		if n.Rotation != nil {
			return *n.Rotation
		}
	case domain.KeyNumberOfChildren:
		return len(n.Children)
	case domain.KeyNestedLevel:
		return n.NestedLevel()
	case domain.KeyNumberOfPoints:
		return vectorPointCount(n)
	case domain.KeyRounding:
		if n.Corner == nil {
			return 0
		}
		if v, ok := n.Corner.Uniform(); ok {
			return v
		}
		return domain.MixedLiteral
	case domain.KeyFill:
		if n.Geometry != nil && len(n.Geometry.Fills) > 0 {
			return n.Geometry.Fills
		}
		return false
	case domain.KeyStroke:
		if n.Geometry != nil {
			return n.Geometry.StrokeWeight
		}
		return 0
	case domain.KeyStrokeColor:
		if n.Geometry != nil && len(n.Geometry.Strokes) > 0 {
			return n.Geometry.Strokes
		}
		return false
	case domain.KeyOpacity:
		if n.Opacity != nil {
			return *n.Opacity * 100
		}
	case domain.KeyBlendMode:
		if n.BlendMode != "" {
			return n.BlendMode
		}
	case domain.KeyFillsBlendMode:
		if n.Geometry != nil && len(n.Geometry.Fills) > 0 {
			return n.Geometry.Fills[0].BlendMode
		}
		return false
	case domain.KeyFillsOpacity:
		if n.Geometry != nil && len(n.Geometry.Fills) > 0 {
			return n.Geometry.Fills[0].EffectiveOpacity()
		}
	case domain.KeyFillsVisibility:
		if n.Geometry != nil && len(n.Geometry.Fills) > 0 {
			return n.Geometry.Fills[0].IsVisible()
		}
	case domain.KeyStrokesOpacity:
		if n.Geometry != nil && len(n.Geometry.Strokes) > 0 {
			return n.Geometry.Strokes[0].EffectiveOpacity()
		}
	case domain.KeyStrokesBlendMode:
		if n.Geometry != nil && len(n.Geometry.Strokes) > 0 && n.Geometry.Strokes[0].BlendMode != "" {
			return n.Geometry.Strokes[0].BlendMode
		}
	case domain.KeyStrokesVisibility:
		if n.Geometry != nil && len(n.Geometry.Strokes) > 0 {
			return n.Geometry.Strokes[0].IsVisible()
		}
	case domain.KeyStrokesAlign:
		if n.Geometry != nil && len(n.Geometry.Strokes) > 0 && n.Geometry.StrokeAlign != "" {
			return n.Geometry.StrokeAlign
		}
	case domain.KeyFontName:
		if n.Text != nil {
			if n.Text.FontMixed {
				return domain.MixedLiteral
			}
			return n.Text.FontFamily
		}
	case domain.KeyFontSize:
		if n.Text != nil && n.Text.FontSize != nil {
			return *n.Text.FontSize
		}
	case domain.KeyFontWeight:
		if n.Text != nil && n.Text.FontWeight != nil {
			return *n.Text.FontWeight
		}
	case domain.KeyLineHeight:
		if n.Text != nil && n.Text.LineHeight != nil {
			if n.Text.LineHeight.Unit == domain.UnitAuto {
				return "Auto"
			}
			return n.Text.LineHeight.Value
		}
	case domain.KeyLetterSpacing:
		if n.Text != nil && n.Text.LetterSpacing != nil && n.Text.LetterSpacing.Unit == domain.UnitPercent {
			return n.Text.LetterSpacing.Value
		}
	case domain.KeyTextAlignH:
		if n.Text != nil && n.Text.AlignHorizontal != "" {
			return n.Text.AlignHorizontal
		}
	case domain.KeyTextAlignV:
		if n.Text != nil && n.Text.AlignVertical != "" {
			return n.Text.AlignVertical
		}
	case domain.KeyTextDecoration:
		if n.Text != nil && n.Text.Decoration != "" {
			return n.Text.Decoration
		}
	case domain.KeyParagraphIndent:
		if n.Text != nil {
			return n.Text.ParagraphIndent
		}
	case domain.KeyParagraphSpacing:
		if n.Text != nil {
			return n.Text.ParagraphSpacing
		}
	case domain.KeyAutoLayout:
		if n.AutoLayout != nil {
			return n.AutoLayout.Mode != domain.LayoutModeNone
		}
	case domain.KeyAutoLayoutPosition:
		if n.AutoLayout != nil && n.AutoLayout.PrimaryAlign != "" {
			return n.AutoLayout.PrimaryAlign
		}
	case domain.KeyAutoLayoutDirection:
		if n.AutoLayout != nil && n.AutoLayout.Mode != domain.LayoutModeNone {
			return n.AutoLayout.Mode
		}
	case domain.KeyAutoLayoutItemSpacing:
		if n.AutoLayout != nil {
			return n.AutoLayout.ItemSpacing
		}
	case domain.KeyAutoLayoutPaddingTop:
		if n.AutoLayout != nil {
			return n.AutoLayout.PaddingTop
		}
	case domain.KeyAutoLayoutPaddingBottom:
		if n.AutoLayout != nil {
			return n.AutoLayout.PaddingBottom
		}
	case domain.KeyAutoLayoutPaddingLeft:
		if n.AutoLayout != nil {
			return n.AutoLayout.PaddingLeft
		}
	case domain.KeyAutoLayoutPaddingRight:
		if n.AutoLayout != nil {
			return n.AutoLayout.PaddingRight
		}
	case domain.KeyInteraction:
		if supportsInteraction(n) {
			return hasInteraction(n)
		}
	case domain.KeyFlowStartingPoint:
		if supportsInteraction(n) {
			return isFlowStartingPoint(n)
		}
	case domain.KeyVisibility:
		if n.Visible != nil {
			return *n.Visible
		}
	case domain.KeyIsLocked:
		if n.Locked != nil {
			return *n.Locked
		}
	case domain.KeyIsMask:
		if n.IsMask != nil {
			return *n.IsMask
		}
	case domain.KeyExportSetting:
		return len(n.ExportPresets) > 0
	case domain.KeyOverridenProps:
		if n.Kind == domain.KindInstance {
			return len(n.Overrides) > 0
		}
		return false
	}
	return notApplicable
}

// snapshotKeys is the full attribute set reported by Snapshot, in the
// order the presentation layer lists them.
var snapshotKeys = []domain.AttributeKey{
	domain.KeyLayerName, domain.KeyPageName,
	domain.KeyWidth, domain.KeyHeight, domain.KeyX, domain.KeyY, domain.KeyRotation,
	domain.KeyNumberOfChildren, domain.KeyNestedLevel, domain.KeyNumberOfPoints,
	domain.KeyRounding,
	domain.KeyFill, domain.KeyStroke, domain.KeyStrokeColor,
	domain.KeyOpacity, domain.KeyBlendMode,
	domain.KeyFillsBlendMode, domain.KeyFillsOpacity, domain.KeyFillsVisibility,
	domain.KeyStrokesOpacity, domain.KeyStrokesBlendMode, domain.KeyStrokesVisibility, domain.KeyStrokesAlign,
	domain.KeyFontName, domain.KeyFontSize, domain.KeyLineHeight, domain.KeyLetterSpacing, domain.KeyFontWeight,
	domain.KeyTextAlignH, domain.KeyTextAlignV, domain.KeyTextDecoration,
	domain.KeyParagraphIndent, domain.KeyParagraphSpacing,
	domain.KeyAutoLayout, domain.KeyAutoLayoutPosition, domain.KeyAutoLayoutDirection,
	domain.KeyAutoLayoutItemSpacing, domain.KeyAutoLayoutPaddingTop, domain.KeyAutoLayoutPaddingBottom,
	domain.KeyAutoLayoutPaddingLeft, domain.KeyAutoLayoutPaddingRight,
	domain.KeyInteraction, domain.KeyFlowStartingPoint,
	domain.KeyVisibility, domain.KeyIsLocked, domain.KeyIsMask,
	domain.KeyExportSetting, domain.KeyOverridenProps,
}
