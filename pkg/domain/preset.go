package domain

import "strings"

// Format is an export image format tag.
type Format string

const (
	FormatPNG Format = "PNG"
	FormatJPG Format = "JPG"
	FormatSVG Format = "SVG"
	FormatPDF Format = "PDF"
)

// Extension returns the lowercase filename extension for the format.
func (f Format) Extension() string { return strings.ToLower(string(f)) }

// ExportPreset is an export configuration attached to a node.
type ExportPreset struct {
	Format Format  `json:"format" yaml:"format"`
	Scale  float64 `json:"scale" yaml:"scale"`
	Suffix string  `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// DefaultExportPreset is the synthetic preset used when a node carries
// none: PNG at 2x scale, no suffix.
func DefaultExportPreset() ExportPreset {
	return ExportPreset{Format: FormatPNG, Scale: 2}
}

// Filename computes the output name for a node exported with this
// preset: name + suffix + "." + lowercase extension.
func (p ExportPreset) Filename(nodeName string) string {
	return nodeName + p.Suffix + "." + p.Format.Extension()
}

// ExportOverrides are the user's per-field overrides applied atop each
// resolved preset. A nil field means "keep the preset's value"; each
// override is all-or-nothing per field.
type ExportOverrides struct {
	Format *Format  `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`
	Scale  *float64 `json:"scale,omitempty" yaml:"scale,omitempty" mapstructure:"scale"`
	Suffix *string  `json:"suffix,omitempty" yaml:"suffix,omitempty" mapstructure:"suffix"`
}

// Apply returns the preset with the non-nil overrides substituted.
func (o ExportOverrides) Apply(p ExportPreset) ExportPreset {
	if o.Format != nil {
		p.Format = *o.Format
	}
	if o.Scale != nil {
		p.Scale = *o.Scale
	}
	if o.Suffix != nil {
		p.Suffix = *o.Suffix
	}
	return p
}

// ExportFile is a finished export artifact: bytes plus the filename
// computed by the dispatcher. The export sink decides how it reaches the
// user (direct download or archive member).
type ExportFile struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}
