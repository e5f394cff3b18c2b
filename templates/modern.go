package templates

import (
	"image/color"
	"math"
	"strconv"

	"seehuhn.de/go/geom/rect"

	"crew-poster/canvas"
	"crew-poster/models"
	"crew-poster/roster"
	"crew-poster/utils"
)

var (
	paper    = color.RGBA{R: 0xFA, G: 0xFA, B: 0xF8, A: 0xFF}
	cardFill = color.RGBA{R: 0xF0, G: 0xF0, B: 0xEE, A: 0xFF}
	hairline = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
	muted    = color.RGBA{R: 0x5C, G: 0x5C, B: 0x5C, A: 0xFF}
)

// Modern is the minimal style: white ground, an accent bar down the left
// edge and rounded seat cards
type Modern struct{}

var _ Renderer = Modern{}

func (Modern) ID() string      { return "modern" }
func (Modern) Name() string    { return "Modern" }
func (Modern) NameBudget() int { return 14 }

func (Modern) EmblemRegion(width, height int) rect.Rect {
	return cornerEmblem(width, height, true, 0.14, 0.06)
}

func (s Modern) Render(surface *canvas.Canvas, crew models.Crew, seats roster.Assignment, cfg models.TemplateConfig) {
	m := newMetrics(surface.Width(), surface.Height())
	primary := legibleOn(cfg.Colors.Primary, paper)
	secondary := legibleOn(cfg.Colors.Secondary, paper)

	surface.Clear(paper)
	surface.FillRect(rect.Rect{LLx: 0, LLy: 0, URx: m.px(18), URy: m.H}, cfg.Colors.Primary)
	surface.FillRect(rect.Rect{LLx: m.px(18), LLy: 0, URx: m.px(26), URy: m.H}, cfg.Colors.Secondary)

	corner := s.EmblemRegion(surface.Width(), surface.Height())
	if cfg.HasEmblem() {
		drawEmblem(surface, cfg, corner)
	} else if initials := utils.Initials(crew.ClubName, 2); initials != "" {
		r := width(corner) * 0.42
		cx, cy := (corner.LLx+corner.URx)/2, (corner.LLy+corner.URy)/2
		surface.FillPath(canvas.CirclePath(cx, cy, r), primary)
		surface.TextInBox(surface.Face(canvas.Bold, r*0.8), initials, corner, utils.ContrastOn(primary), canvas.AlignCenter)
	}

	left := m.px(80)
	right := corner.LLx - m.px(24)
	y := m.px(90)

	if crew.ClubName != "" {
		face := surface.Face(canvas.Medium, m.px(26))
		eyebrow := utils.Upper(crew.ClubName)
		tracking := m.px(4)
		if canvas.MeasureSpaced(face, eyebrow, tracking) > right-left {
			tracking = 0
			eyebrow = canvas.FitText(face, eyebrow, right-left)
		}
		y += canvas.Ascent(face)
		surface.SpacedText(face, eyebrow, left, y, tracking, secondary, canvas.AlignLeft)
		y += canvas.Descent(face) + m.px(10)
	}

	face, title := surface.FitFace(canvas.Bold, designation(crew, seats), right-left, m.px(72), m.px(30))
	y += canvas.Ascent(face)
	surface.Text(face, title, left, y, primary, canvas.AlignLeft)
	y += canvas.Descent(face) + m.px(6)

	face, race := surface.FitFace(canvas.Regular, raceLine(crew, seats), right-left, m.px(30), m.px(16))
	y += canvas.Ascent(face)
	surface.Text(face, race, left, y, muted, canvas.AlignLeft)
	y += canvas.Descent(face)

	y = math.Max(y, corner.URy) + m.px(28)
	surface.FillRect(rect.Rect{LLx: left, LLy: y, URx: left + m.px(120), URy: y + m.px(6)}, primary)
	y += m.px(40)

	contentRight := m.W - m.px(80)
	if cox, ok := seats.Cox(); ok {
		pillH := m.px(64)
		pill := rect.Rect{LLx: left, LLy: y, URx: left + math.Min(contentRight-left, m.px(520)), URy: y + pillH}
		surface.FillPath(canvas.RoundedRectPath(pill, pillH/2), primary)
		inner := canvas.Inset(pill, m.px(4))
		surface.FillPath(canvas.RoundedRectPath(inner, height(inner)/2), paper)
		badge := surface.Face(canvas.Medium, m.px(30))
		labelledName(surface, badge, coxLabel(cox), cox.Name, s.NameBudget(), pill, m.px(28), primary, canvas.AlignLeft)
		y = pill.URy + m.px(28)
	}

	footerY := m.H - m.px(110)
	rosterBottom := footerY - m.px(20)
	if crew.CoachName != "" {
		rosterBottom = footerY - m.px(110)
		label := surface.Face(canvas.Medium, m.px(20))
		surface.SpacedText(label, "COACH", left, footerY-m.px(66), m.px(3), muted, canvas.AlignLeft)
		name := surface.Face(canvas.Medium, m.px(32))
		surface.Text(name, canvas.FitText(name, crew.CoachName, contentRight-left), left, footerY-m.px(24), ink, canvas.AlignLeft)
	}

	area := rect.Rect{LLx: left, LLy: y, URx: contentRight, URy: rosterBottom}
	for _, c := range rosterCells(area, seats, m.px(24), m.px(16), m.px(96), 0.8) {
		s.card(surface, m, c, primary)
	}

	surface.Line(left, footerY, contentRight, footerY, m.px(1.5), hairline)
	code := surface.Face(canvas.Bold, m.px(28))
	surface.Text(code, seats.Class.Code, left, footerY+m.px(48), primary, canvas.AlignLeft)
	class := surface.Face(canvas.Regular, m.px(24))
	surface.Text(class, seats.Class.Name, contentRight, footerY+m.px(48), muted, canvas.AlignRight)
}

// card draws one seat as a rounded card with a numbered disc
func (s Modern) card(surface *canvas.Canvas, m metrics, c cell, accent color.RGBA) {
	b := c.Box
	rowH := height(b)
	surface.FillPath(canvas.RoundedRectPath(b, math.Min(m.px(14), rowH/2)), cardFill)

	r := rowH * 0.32
	discX := b.LLx + m.px(16) + r
	midY := (b.LLy + b.URy) / 2
	surface.FillPath(canvas.CirclePath(discX, midY, r), accent)
	num := surface.Face(canvas.Bold, r*0.95)
	disc := rect.Rect{LLx: discX - r, LLy: midY - r, URx: discX + r, URy: midY + r}
	surface.TextInBox(num, strconv.Itoa(c.Seat.Number), disc, utils.ContrastOn(accent), canvas.AlignCenter)

	labelRight := b.URx - m.px(18)
	labelW := 0.0
	if _, err := strconv.Atoi(c.Seat.Label); err != nil {
		face := surface.Face(canvas.Regular, math.Min(rowH*0.28, m.px(22)))
		labelW = surface.TextInBox(face, c.Seat.Label, rect.Rect{LLx: b.LLx, LLy: b.LLy, URx: labelRight, URy: b.URy}, muted, canvas.AlignRight)
		labelW += m.px(12)
	}

	nameX := discX + r + m.px(18)
	face := surface.Face(canvas.Medium, math.Min(rowH*0.4, m.px(36)))
	name := FitName(face, c.Seat.Name, s.NameBudget(), labelRight-labelW-nameX)
	surface.TextInBox(face, name, rect.Rect{LLx: nameX, LLy: b.LLy, URx: labelRight, URy: b.URy}, ink, canvas.AlignLeft)
}
