package domain

import "strconv"

// Style is a local document style (paint, text, effect or grid).
type Style struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	StyleType string `json:"style_type" yaml:"style_type"`
}

// Style type tags.
const (
	StylePaint  = "PAINT"
	StyleText   = "TEXT"
	StyleEffect = "EFFECT"
	StyleGrid   = "GRID"
)

// VariableMode is one mode of a variable collection.
type VariableMode struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Variable is a design token with one value per collection mode.
type Variable struct {
	Name         string         `json:"name" yaml:"name"`
	ResolvedType string         `json:"resolved_type" yaml:"resolved_type"`
	ValuesByMode map[string]any `json:"values_by_mode" yaml:"values_by_mode"`
}

// Variable resolved types.
const (
	VariableColor   = "COLOR"
	VariableBoolean = "BOOLEAN"
	VariableFloat   = "FLOAT"
	VariableString  = "STRING"
)

// VariableCollection groups variables and their modes.
type VariableCollection struct {
	Name      string         `json:"name" yaml:"name"`
	Modes     []VariableMode `json:"modes" yaml:"modes"`
	Variables []Variable     `json:"variables" yaml:"variables"`
}

// DisplayValue normalizes a variable value for presentation: colors
// become 6-digit uppercase hex, booleans True/False, floats decimal
// strings; everything else passes through as a string.
func DisplayValue(resolvedType string, value any) string {
	switch resolvedType {
	case VariableColor:
		switch c := value.(type) {
		case RGB:
			return c.Hex()
		case RGBA:
			return c.RGB().Hex()
		}
	case VariableBoolean:
		if b, ok := value.(bool); ok {
			if b {
				return "True"
			}
			return "False"
		}
	case VariableFloat:
		if f, ok := value.(float64); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}
