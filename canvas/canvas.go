// Package canvas is the drawing surface templates paint on: anti-aliased
// path fills, text and image compositing over an RGBA buffer.
package canvas

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Canvas is a fixed-size RGBA drawing surface.
// A Canvas is not safe for concurrent use; allocate one per render.
type Canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	faces  map[faceKey]font.Face
}

// New allocates a transparent canvas of the given size
func New(width, height int) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(0, 0),
		faces:  make(map[faceKey]font.Face),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Box returns the full canvas as a layout rectangle
func (c *Canvas) Box() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(c.Width()), URy: float64(c.Height())}
}

// Image exposes the underlying pixels
func (c *Canvas) Image() *image.RGBA { return c.img }

// Close releases the font faces opened on this canvas
func (c *Canvas) Close() error {
	for k, f := range c.faces {
		f.Close()
		delete(c.faces, k)
	}
	return nil
}

// Clear fills the whole canvas with col, replacing existing pixels
func (c *Canvas) Clear(col color.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}

// FillRect fills an axis-aligned rectangle
func (c *Canvas) FillRect(r rect.Rect, col color.Color) {
	c.FillPath(RectPath(r), col)
}

// FillPath fills p with col using the nonzero winding rule.
// Subpaths are closed implicitly.
func (c *Canvas) FillPath(p *path.Data, col color.Color) {
	if p == nil || len(p.Coords) == 0 {
		return
	}
	minX, minY, maxX, maxY := coordBounds(p.Coords)
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	z := c.raster
	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = xdraw.Over
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(v vec.Vec2) (float32, float32) {
		return float32(v.X - ox), float32(v.Y - oy)
	}

	open := false
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(p.Coords[i]))
			open = true
			i++
		case path.CmdLineTo:
			z.LineTo(pt(p.Coords[i]))
			i++
		case path.CmdQuadTo:
			bx, by := pt(p.Coords[i])
			cx, cy := pt(p.Coords[i+1])
			z.QuadTo(bx, by, cx, cy)
			i += 2
		case path.CmdCubeTo:
			bx, by := pt(p.Coords[i])
			cx, cy := pt(p.Coords[i+1])
			dx, dy := pt(p.Coords[i+2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			i += 3
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	z.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// StrokeRect draws the outline of r with the given line width, inset so the
// stroke stays inside r
func (c *Canvas) StrokeRect(r rect.Rect, width float64, col color.Color) {
	c.FillPath(FramePath(r, Inset(r, width)), col)
}

// Line draws a straight segment of the given width with butt ends
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	c.FillPath(LinePath(vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y1}, width), col)
}

// VerticalGradient paints r row by row; blend maps t in [0,1], top to
// bottom, to the row color
func (c *Canvas) VerticalGradient(r rect.Rect, blend func(t float64) color.Color) {
	ir := pixelRect(r).Intersect(c.img.Bounds())
	if ir.Empty() {
		return
	}
	h := float64(ir.Dy())
	for y := ir.Min.Y; y < ir.Max.Y; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y-ir.Min.Y) / (h - 1)
		}
		row := image.Rect(ir.Min.X, y, ir.Max.X, y+1)
		xdraw.Draw(c.img, row, image.NewUniform(blend(t)), image.Point{}, xdraw.Over)
	}
}

// Grain darkens pixels inside r by a deterministic speckle pattern of the given
// strength (0-255). The same canvas size always yields the same pattern.
func (c *Canvas) Grain(r rect.Rect, strength uint8) {
	ir := pixelRect(r).Intersect(c.img.Bounds())
	for y := ir.Min.Y; y < ir.Max.Y; y++ {
		off := c.img.PixOffset(ir.Min.X, y)
		for x := ir.Min.X; x < ir.Max.X; x++ {
			d := uint8(speckle(x, y) % (uint32(strength) + 1))
			pix := c.img.Pix[off : off+3 : off+3]
			for k := range pix {
				if pix[k] > d {
					pix[k] -= d
				} else {
					pix[k] = 0
				}
			}
			off += 4
		}
	}
}

// speckle is an integer hash of the pixel position
func speckle(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	// Most pixels stay untouched; only one in four is darkened
	if h&3 != 0 {
		return 0
	}
	return h >> 2
}

// DrawImageFit scales img to fit inside box, preserving aspect ratio, and
// composites it centered over the canvas
func (c *Canvas) DrawImageFit(img image.Image, box rect.Rect) {
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	bw, bh := box.URx-box.LLx, box.URy-box.LLy
	scale := math.Min(bw/float64(sb.Dx()), bh/float64(sb.Dy()))
	w, h := float64(sb.Dx())*scale, float64(sb.Dy())*scale
	x0 := box.LLx + (bw-w)/2
	y0 := box.LLy + (bh-h)/2
	dst := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x0+w)), int(math.Round(y0+h)))
	xdraw.CatmullRom.Scale(c.img, dst, img, sb, xdraw.Over, nil)
}

func coordBounds(coords []vec.Vec2) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range coords {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}

func pixelRect(r rect.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.LLx)), int(math.Floor(r.LLy)),
		int(math.Ceil(r.URx)), int(math.Ceil(r.URy)),
	)
}
