package colors

import (
	"fmt"
	"math"
)

// FrancoKey is the reserved key that always maps to the strong red used
// for days off. Employee ids never render in it on purpose.
const FrancoKey = "franco"

// Franco cells in spreadsheets use a plain saturated red fill.
const FrancoFillHex = "FF0000"

type HSL struct {
	H int
	S int
	L int
}

// ForKey derives a stable color from a key: the key bytes fold into a hue
// (0-359) with fixed saturation/lightness. Same key, same color, always.
func ForKey(key string) HSL {
	if key == FrancoKey {
		return HSL{H: 0, S: 90, L: 45}
	}

	h := 0
	for i := 0; i < len(key); i++ {
		h = (h*31 + int(key[i])) % 360
	}
	return HSL{H: h, S: 68, L: 46}
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%ddeg %d%% %d%%)", c.H, c.S, c.L)
}

// RGB converts to 0-255 channels.
func (c HSL) RGB() (int, int, int) {
	s := float64(c.S) / 100
	l := float64(c.L) / 100
	h := float64(c.H)

	k := func(n float64) float64 { return math.Mod(n+h/30, 12) }
	a := s * math.Min(l, 1-l)
	f := func(n float64) float64 {
		return l - a*math.Max(-1, math.Min(k(n)-3, math.Min(9-k(n), 1)))
	}

	return int(math.Round(255 * f(0))), int(math.Round(255 * f(8))), int(math.Round(255 * f(4)))
}

// Hex renders the color as an "RRGGBB" spreadsheet fill value.
func (c HSL) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

// HexForKey is the one-step form used by the export renderers.
func HexForKey(key string) string {
	return ForKey(key).Hex()
}
