package domain

import (
	"fmt"
	"strings"
)

// RGB is a color with channels in the 0..1 range, matching the host's
// representation.
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// RGBA extends RGB with an alpha channel.
type RGBA struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB { return RGB{R: c.R, G: c.G, B: c.B} }

// Hex renders the color as a 6-digit uppercase hex string via
// channel*255 rounding, e.g. "FF0000".
func (c RGB) Hex() string {
	return strings.ToUpper(fmt.Sprintf("%02x%02x%02x",
		roundChannel(c.R), roundChannel(c.G), roundChannel(c.B)))
}

func roundChannel(v float64) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return n
}

// NormalizeHex uppercases a hex literal and strips an optional leading
// "#", so user input compares against RGB.Hex output.
func NormalizeHex(value string) string {
	return strings.ToUpper(strings.TrimPrefix(value, "#"))
}
