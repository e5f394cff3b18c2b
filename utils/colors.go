package utils

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// clubColors maps common rowing club color names to their hex values
var clubColors = map[string]string{
	"black":          "#000000",
	"white":          "#FFFFFF",
	"navy":           "#1B2A4A",
	"oxford blue":    "#002147",
	"cambridge blue": "#A3C1AD",
	"royal blue":     "#2B4EA2",
	"sky blue":       "#87CEEB",
	"light blue":     "#9CC3E6",
	"dark blue":      "#00205B",
	"maroon":         "#800000",
	"claret":         "#7F1734",
	"cerise":         "#DE3163",
	"pink":           "#F4A6C6",
	"scarlet":        "#C8102E",
	"red":            "#D0202E",
	"orange":         "#F28C28",
	"gold":           "#C9A227",
	"yellow":         "#FFD100",
	"bottle green":   "#006A4E",
	"forest green":   "#228B22",
	"green":          "#00843D",
	"purple":         "#5B2A86",
	"silver":         "#C0C0C0",
	"grey":           "#808080",
	"gray":           "#808080",
}

// ParseColor parses a color string: "#RGB", "#RRGGBB" (leading # optional)
// or a named club color. The result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if key == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if hex, ok := clubColors[key]; ok {
		key = hex
	}
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	if len(key) != 4 && len(key) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return toRGBA(c), nil
}

// ColorHex formats c as "#rrggbb"
func ColorHex(c color.RGBA) string {
	return fromRGBA(c).Hex()
}

// Tint blends c toward white by t in Lab space (0 = c, 1 = white)
func Tint(c color.RGBA, t float64) color.RGBA {
	return Blend(c, color.RGBA{R: 255, G: 255, B: 255, A: 255}, t)
}

// Shade blends c toward black by t in Lab space (0 = c, 1 = black)
func Shade(c color.RGBA, t float64) color.RGBA {
	return Blend(c, color.RGBA{A: 255}, t)
}

// Blend mixes a and b in Lab space
func Blend(a, b color.RGBA, t float64) color.RGBA {
	return toRGBA(fromRGBA(a).BlendLab(fromRGBA(b), t))
}

// IsLight reports whether c is light enough to carry dark text
func IsLight(c color.RGBA) bool {
	l, _, _ := fromRGBA(c).Lab()
	return l > 0.62
}

// ContrastOn returns near-black or white, whichever reads better on background
func ContrastOn(background color.RGBA) color.RGBA {
	if IsLight(background) {
		return color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// WithAlpha returns c premultiplied to the given opacity
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	a := uint32(alpha)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: alpha,
	}
}

func fromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
