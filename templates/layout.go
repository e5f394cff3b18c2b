package templates

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"seehuhn.de/go/geom/rect"

	"crew-poster/canvas"
	"crew-poster/models"
	"crew-poster/roster"
	"crew-poster/utils"
)

// ink is the name color on every style. It does not follow the club colors.
var ink = color.RGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF}

// metrics scales a layout designed on a 1080px short side to the canvas
type metrics struct {
	W, H float64
	S    float64
}

func newMetrics(width, height int) metrics {
	w, h := float64(width), float64(height)
	return metrics{W: w, H: h, S: math.Min(w, h) / 1080}
}

func (m metrics) px(v float64) float64 {
	return v * m.S
}

// cornerEmblem returns a square of side frac*short-side placed margin*short-side
// from the given corner
func cornerEmblem(width, height int, right bool, frac, margin float64) rect.Rect {
	short := math.Min(float64(width), float64(height))
	size := short * frac
	off := short * margin
	if right {
		x1 := float64(width) - off
		return rect.Rect{LLx: x1 - size, LLy: off, URx: x1, URy: off + size}
	}
	return rect.Rect{LLx: off, LLy: off, URx: off + size, URy: off + size}
}

func width(r rect.Rect) float64  { return r.URx - r.LLx }
func height(r rect.Rect) float64 { return r.URy - r.LLy }

// FitName applies a style's character budget to a name and then trims it
// further if it would still overflow maxWidth pixels
func FitName(face font.Face, name string, budget int, maxWidth float64) string {
	return canvas.FitText(face, utils.TruncateName(name, budget), maxWidth)
}

// designation is the boat/crew line: the boat name, or the class name when the boat is unnamed
func designation(crew models.Crew, seats roster.Assignment) string {
	if name := strings.TrimSpace(crew.BoatName); name != "" {
		return name
	}
	return seats.Class.Name
}

// raceLine joins the race name and boat class
func raceLine(crew models.Crew, seats roster.Assignment) string {
	class := seats.Class.Name + " (" + seats.Class.Code + ")"
	if race := strings.TrimSpace(crew.RaceName); race != "" {
		return race + " · " + class
	}
	return class
}

// legibleOn adjusts an accent color so it stays readable on bg while keeping its hue
func legibleOn(c, bg color.RGBA) color.RGBA {
	switch {
	case utils.IsLight(c) && utils.IsLight(bg):
		return utils.Shade(c, 0.55)
	case !utils.IsLight(c) && !utils.IsLight(bg):
		return utils.Tint(c, 0.6)
	default:
		return c
	}
}

// cell is one roster entry's box
type cell struct {
	Box  rect.Rect
	Seat roster.Seat
}

// rosterCells lays the rower columns out inside area. Row height is capped at
// maxRow and the block is centered vertically, so short crews do not stretch.
// A single column is narrowed to singleFrac of the area width.
func rosterCells(area rect.Rect, seats roster.Assignment, colGap, rowGap, maxRow, singleFrac float64) []cell {
	cols := seats.Columns()
	rows := seats.MaxColumnLength()
	if rows == 0 || len(cols) == 0 {
		return nil
	}

	if len(cols) == 1 {
		w := width(area) * singleFrac
		cx := (area.LLx + area.URx) / 2
		area.LLx, area.URx = cx-w/2, cx+w/2
	}

	n := float64(len(cols))
	colW := (width(area) - colGap*(n-1)) / n
	rowH := math.Min((height(area)-rowGap*float64(rows-1))/float64(rows), maxRow)
	if rowH <= 0 || colW <= 0 {
		return nil
	}
	blockH := rowH*float64(rows) + rowGap*float64(rows-1)
	top := area.LLy + (height(area)-blockH)/2

	cells := make([]cell, 0, len(seats.Seats))
	for ci, col := range cols {
		x := area.LLx + float64(ci)*(colW+colGap)
		for ri, seat := range col {
			y := top + float64(ri)*(rowH+rowGap)
			cells = append(cells, cell{
				Box:  rect.Rect{LLx: x, LLy: y, URx: x + colW, URy: y + rowH},
				Seat: seat,
			})
		}
	}
	return cells
}

// drawEmblem composites the emblem, if any, into region
func drawEmblem(surface *canvas.Canvas, cfg models.TemplateConfig, region rect.Rect) {
	if !cfg.HasEmblem() {
		return
	}
	surface.DrawImageFit(cfg.Emblem.Image, region)
}

// reserveSides narrows a centered header so it clears a corner box on either side
func reserveSides(left, right float64, corner rect.Rect, gap float64) (float64, float64) {
	reserve := width(corner) + gap
	return left + reserve, right - reserve
}

// labelledName draws label in labelColor and the name after it in ink as one
// run, placed per align inside box with pad on either side. The name gets the
// width left after the label and is held to budget characters when budget > 0.
// It returns the name as drawn.
func labelledName(surface *canvas.Canvas, face font.Face, label, name string, budget int, box rect.Rect, pad float64, labelColor color.RGBA, align canvas.Align) string {
	labelW := canvas.MeasureText(face, label)
	room := width(box) - 2*pad - labelW
	if budget > 0 {
		name = FitName(face, name, budget, room)
	} else {
		name = canvas.FitText(face, name, room)
	}
	total := labelW + canvas.MeasureText(face, name)

	x := box.LLx + pad
	switch align {
	case canvas.AlignCenter:
		x = (box.LLx+box.URx)/2 - total/2
	case canvas.AlignRight:
		x = box.URx - pad - total
	}
	surface.TextInBox(face, label, rect.Rect{LLx: x, LLy: box.LLy, URx: box.URx, URy: box.URy}, labelColor, canvas.AlignLeft)
	surface.TextInBox(face, name, rect.Rect{LLx: x + labelW, LLy: box.LLy, URx: box.URx, URy: box.URy}, ink, canvas.AlignLeft)
	return name
}

// coxLabel prefixes the cox's name in badges
func coxLabel(seat roster.Seat) string {
	return seat.Label + " · "
}
