package canvas

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier curve
const kappa = 0.5522847498307936

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// Inset shrinks r by d on every side
func Inset(r rect.Rect, d float64) rect.Rect {
	return rect.Rect{LLx: r.LLx + d, LLy: r.LLy + d, URx: r.URx - d, URy: r.URy - d}
}

// RectPath is the clockwise outline of r
func RectPath(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(r.LLx, r.LLy)).
		LineTo(pt(r.URx, r.LLy)).
		LineTo(pt(r.URx, r.URy)).
		LineTo(pt(r.LLx, r.URy)).
		Close()
}

// RoundedRectPath is the clockwise outline of r with circular corners.
// The radius is clamped to half the shorter side.
func RoundedRectPath(r rect.Rect, radius float64) *path.Data {
	w, h := r.URx-r.LLx, r.URy-r.LLy
	radius = math.Max(0, math.Min(radius, math.Min(w, h)/2))
	if radius == 0 {
		return RectPath(r)
	}
	k := radius * kappa
	x0, y0, x1, y1 := r.LLx, r.LLy, r.URx, r.URy

	return (&path.Data{}).
		MoveTo(pt(x0+radius, y0)).
		LineTo(pt(x1-radius, y0)).
		CubeTo(pt(x1-radius+k, y0), pt(x1, y0+radius-k), pt(x1, y0+radius)).
		LineTo(pt(x1, y1-radius)).
		CubeTo(pt(x1, y1-radius+k), pt(x1-radius+k, y1), pt(x1-radius, y1)).
		LineTo(pt(x0+radius, y1)).
		CubeTo(pt(x0+radius-k, y1), pt(x0, y1-radius+k), pt(x0, y1-radius)).
		LineTo(pt(x0, y0+radius)).
		CubeTo(pt(x0, y0+radius-k), pt(x0+radius-k, y0), pt(x0+radius, y0)).
		Close()
}

// CirclePath approximates a circle with four cubic curves
func CirclePath(cx, cy, radius float64) *path.Data {
	return EllipsePath(cx, cy, radius, radius)
}

// EllipsePath approximates an axis-aligned ellipse with four cubic curves
func EllipsePath(cx, cy, rx, ry float64) *path.Data {
	kx, ky := rx*kappa, ry*kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// PolygonPath joins the points with straight lines and closes the shape
func PolygonPath(points []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, v := range points {
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	if len(points) > 0 {
		p = p.Close()
	}
	return p
}

// StarPath is a star with the given number of points, the first pointing up
func StarPath(center vec.Vec2, outer, inner float64, points int) *path.Data {
	vertices := make([]vec.Vec2, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/float64(points)
		vertices = append(vertices, center.Add(pt(math.Cos(angle), math.Sin(angle)).Mul(radius)))
	}
	return PolygonPath(vertices)
}

// DiamondPath is a rhombus centered on center
func DiamondPath(center vec.Vec2, w, h float64) *path.Data {
	return PolygonPath([]vec.Vec2{
		center.Add(pt(0, -h/2)),
		center.Add(pt(w/2, 0)),
		center.Add(pt(0, h/2)),
		center.Add(pt(-w/2, 0)),
	})
}

// ShieldPath is a heater shield filling r: straight sides down to 55% of the
// height, then curving to a point at the bottom center
func ShieldPath(r rect.Rect) *path.Data {
	w, h := r.URx-r.LLx, r.URy-r.LLy
	cx := r.LLx + w/2
	shoulder := r.LLy + h*0.55

	return (&path.Data{}).
		MoveTo(pt(r.LLx, r.LLy)).
		LineTo(pt(r.URx, r.LLy)).
		LineTo(pt(r.URx, shoulder)).
		CubeTo(pt(r.URx, shoulder+h*0.25), pt(cx+w*0.2, r.URy-h*0.05), pt(cx, r.URy)).
		CubeTo(pt(cx-w*0.2, r.URy-h*0.05), pt(r.LLx, shoulder+h*0.25), pt(r.LLx, shoulder)).
		Close()
}

// BannerPath is a ribbon filling r with swallow-tail notches of the given depth at both ends
func BannerPath(r rect.Rect, notch float64) *path.Data {
	midY := (r.LLy + r.URy) / 2
	return PolygonPath([]vec.Vec2{
		pt(r.LLx, r.LLy),
		pt(r.URx, r.LLy),
		pt(r.URx-notch, midY),
		pt(r.URx, r.URy),
		pt(r.LLx, r.URy),
		pt(r.LLx+notch, midY),
	})
}

// ChevronPath is a downward-pointing chevron of the given arm thickness filling r
func ChevronPath(r rect.Rect, thickness float64) *path.Data {
	cx := (r.LLx + r.URx) / 2
	return PolygonPath([]vec.Vec2{
		pt(r.LLx, r.LLy),
		pt(r.LLx+thickness, r.LLy),
		pt(cx, r.URy-thickness),
		pt(r.URx-thickness, r.LLy),
		pt(r.URx, r.LLy),
		pt(cx, r.URy),
	})
}

// ParallelogramPath is r with its top edge shifted right by skew
func ParallelogramPath(r rect.Rect, skew float64) *path.Data {
	return PolygonPath([]vec.Vec2{
		pt(r.LLx+skew, r.LLy),
		pt(r.URx+skew, r.LLy),
		pt(r.URx, r.URy),
		pt(r.LLx, r.URy),
	})
}

// LinePath is a segment from a to b of the given width with butt ends
func LinePath(a, b vec.Vec2, width float64) *path.Data {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return &path.Data{}
	}
	n := pt(-d.Y, d.X).Mul(width / 2 / length)
	return PolygonPath([]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// OarPath is a sweep oar lying along the x axis, centered at the origin:
// a shaft with a hatchet blade at the positive end
func OarPath(length, shaft float64) *path.Data {
	half := length / 2
	bladeLen := length * 0.28
	bladeW := shaft * 3.2
	bladeStart := half - bladeLen

	p := LinePath(pt(-half, 0), pt(bladeStart, 0), shaft)
	blade := (&path.Data{}).
		MoveTo(pt(bladeStart, -shaft/2)).
		CubeTo(pt(bladeStart+bladeLen*0.3, -bladeW/2), pt(half-bladeLen*0.1, -bladeW/2), pt(half, -bladeW*0.3)).
		LineTo(pt(half, bladeW*0.4)).
		CubeTo(pt(half-bladeLen*0.2, bladeW/2), pt(bladeStart+bladeLen*0.3, bladeW*0.3), pt(bladeStart, shaft/2)).
		Close()
	return Append(p, blade)
}

// CrossedOarsPath is two oars crossed at center, each tilted by angle degrees
func CrossedOarsPath(center vec.Vec2, length, shaft, angle float64) *path.Data {
	oar := OarPath(length, shaft)
	first := Transform(oar, matrix.RotateDeg(angle).Translate(center.X, center.Y))
	second := Transform(oar, matrix.RotateDeg(180-angle).Translate(center.X, center.Y))
	return Append(first, second)
}

// FramePath is the ring between outer and inner, for drawing outlines as fills
func FramePath(outer, inner rect.Rect) *path.Data {
	return Append(RectPath(outer), Reverse(RectPath(inner)))
}

// RoundedFramePath is the ring between two rounded rectangles
func RoundedFramePath(outer, inner rect.Rect, radius, width float64) *path.Data {
	return Append(RoundedRectPath(outer, radius), Reverse(RoundedRectPath(inner, math.Max(0, radius-width))))
}

// RingPath is an annulus centered on (cx, cy)
func RingPath(cx, cy, outer, inner float64) *path.Data {
	return Append(CirclePath(cx, cy, outer), Reverse(CirclePath(cx, cy, inner)))
}

// Append returns a new path holding the subpaths of all parts in order
func Append(parts ...*path.Data) *path.Data {
	out := &path.Data{}
	for _, p := range parts {
		out.Cmds = append(out.Cmds, p.Cmds...)
		out.Coords = append(out.Coords, p.Coords...)
	}
	return out
}

// Transform maps every point of p through m
func Transform(p *path.Data, m matrix.Matrix) *path.Data {
	out := &path.Data{
		Cmds:   append([]path.Command(nil), p.Cmds...),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, v := range p.Coords {
		out.Coords[i] = apply(m, v)
	}
	return out
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// segment is one drawing command with its start point, used for reversal
type segment struct {
	cmd   path.Command
	start vec.Vec2
	pts   []vec.Vec2
}

// Reverse returns p with every subpath traversed in the opposite direction.
// Filling a reversed inner shape together with an outer one punches a hole
// under the nonzero rule.
func Reverse(p *path.Data) *path.Data {
	out := &path.Data{}
	var segs []segment
	var current, first vec.Vec2
	closed := false

	flush := func() {
		if len(segs) == 0 {
			return
		}
		out = out.MoveTo(current)
		for i := len(segs) - 1; i >= 0; i-- {
			s := segs[i]
			switch s.cmd {
			case path.CmdLineTo:
				out = out.LineTo(s.start)
			case path.CmdQuadTo:
				out = out.QuadTo(s.pts[0], s.start)
			case path.CmdCubeTo:
				out = out.CubeTo(s.pts[1], s.pts[0], s.start)
			}
		}
		if closed {
			out = out.Close()
		}
		segs = segs[:0]
		closed = false
	}

	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = p.Coords[i]
			first = current
			i++
		case path.CmdLineTo:
			segs = append(segs, segment{cmd: cmd, start: current})
			current = p.Coords[i]
			i++
		case path.CmdQuadTo:
			segs = append(segs, segment{cmd: cmd, start: current, pts: p.Coords[i : i+1]})
			current = p.Coords[i+1]
			i += 2
		case path.CmdCubeTo:
			segs = append(segs, segment{cmd: cmd, start: current, pts: p.Coords[i : i+2]})
			current = p.Coords[i+2]
			i += 3
		case path.CmdClose:
			if current != first {
				segs = append(segs, segment{cmd: path.CmdLineTo, start: current})
				current = first
			}
			closed = true
		}
	}
	flush()
	return out
}
