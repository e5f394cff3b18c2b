package canvas

import (
	"image"
	"image/color"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"

	"crew-poster/utils"
)

// Align is the horizontal anchoring of a text run
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// MeasureText returns the advance width of s in pixels
func MeasureText(face font.Face, s string) float64 {
	return fromFixed(font.MeasureString(face, s))
}

// MeasureSpaced returns the width of s drawn with extra tracking between characters
func MeasureSpaced(face font.Face, s string, tracking float64) float64 {
	n := uniseg.GraphemeClusterCount(s)
	if n == 0 {
		return 0
	}
	return MeasureText(face, s) + tracking*float64(n-1)
}

// Ascent returns the face ascent in pixels
func Ascent(face font.Face) float64 {
	return fromFixed(face.Metrics().Ascent)
}

// Descent returns the face descent in pixels
func Descent(face font.Face) float64 {
	return fromFixed(face.Metrics().Descent)
}

// Text draws s with its baseline at y. x is the left edge, center or right
// edge depending on align. It returns the drawn width.
func (c *Canvas) Text(face font.Face, s string, x, y float64, col color.Color, align Align) float64 {
	w := MeasureText(face, s)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
	return w
}

// SpacedText draws s with tracking pixels between characters
func (c *Canvas) SpacedText(face font.Face, s string, x, y, tracking float64, col color.Color, align Align) float64 {
	w := MeasureSpaced(face, s, tracking)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		d.DrawString(g.Str())
		d.Dot.X += toFixed(tracking)
	}
	return w
}

// TextInBox draws s vertically centered in box, anchored per align on the
// box's left edge, center or right edge
func (c *Canvas) TextInBox(face font.Face, s string, box rect.Rect, col color.Color, align Align) float64 {
	baseline := (box.LLy+box.URy)/2 + (Ascent(face)-Descent(face))/2
	x := box.LLx
	switch align {
	case AlignCenter:
		x = (box.LLx + box.URx) / 2
	case AlignRight:
		x = box.URx
	}
	return c.Text(face, s, x, baseline, col, align)
}

// FitText trims s character by character, ending with an ellipsis, until it
// is no wider than maxWidth. Text that already fits is returned unmodified.
func FitText(face font.Face, s string, maxWidth float64) string {
	if MeasureText(face, s) <= maxWidth {
		return s
	}
	for n := uniseg.GraphemeClusterCount(s) - 1; n > 0; n-- {
		candidate := utils.TrimGraphemes(s, n) + utils.Ellipsis
		if MeasureText(face, candidate) <= maxWidth {
			return candidate
		}
	}
	if MeasureText(face, utils.Ellipsis) <= maxWidth {
		return utils.Ellipsis
	}
	return ""
}

// FitFace picks the largest size between size and minSize (stepping down by
// 8%) at which s fits maxWidth. If even minSize is too wide the text is
// trimmed with FitText.
func (c *Canvas) FitFace(id Font, s string, maxWidth, size, minSize float64) (font.Face, string) {
	for ; size > minSize; size *= 0.92 {
		face := c.Face(id, size)
		if MeasureText(face, s) <= maxWidth {
			return face, s
		}
	}
	face := c.Face(id, minSize)
	return face, FitText(face, s, maxWidth)
}
