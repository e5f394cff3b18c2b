package templates

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"crew-poster/canvas"
	"crew-poster/models"
	"crew-poster/roster"
	"crew-poster/utils"
)

var plate = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Bold is the race-day style: a full-bleed primary ground with diagonal
// stripes, upper-case headings and skewed white name panels
type Bold struct{}

var _ Renderer = Bold{}

func (Bold) ID() string      { return "bold" }
func (Bold) Name() string    { return "Bold" }
func (Bold) NameBudget() int { return 10 }

func (Bold) EmblemRegion(width, height int) rect.Rect {
	return cornerEmblem(width, height, false, 0.16, 0.055)
}

func (s Bold) Render(surface *canvas.Canvas, crew models.Crew, seats roster.Assignment, cfg models.TemplateConfig) {
	m := newMetrics(surface.Width(), surface.Height())
	box := surface.Box()
	primary := cfg.Colors.Primary
	contrast := utils.ContrastOn(primary)
	accent := legibleOn(cfg.Colors.Secondary, primary)

	surface.Clear(primary)
	stripe := utils.WithAlpha(cfg.Colors.Secondary, 70)
	for i := 0; i < 4; i++ {
		x := m.W*0.62 + float64(i)*m.px(64)
		surface.FillPath(canvas.ParallelogramPath(rect.Rect{LLx: x, LLy: 0, URx: x + m.px(30), URy: m.px(260)}, m.px(120)), stripe)
		x = m.px(20) + float64(i)*m.px(64)
		surface.FillPath(canvas.ParallelogramPath(rect.Rect{LLx: x, LLy: m.H - m.px(360), URx: x + m.px(30), URy: m.H - m.px(96)}, m.px(120)), stripe)
	}
	surface.FillPath(canvas.FramePath(box, canvas.Inset(box, m.px(20))), cfg.Colors.Secondary)

	corner := s.EmblemRegion(surface.Width(), surface.Height())
	surface.FillPath(canvas.RoundedRectPath(canvas.Inset(corner, -m.px(8)), m.px(18)), plate)
	if cfg.HasEmblem() {
		drawEmblem(surface, cfg, corner)
	} else if initials := utils.Initials(crew.ClubName, 2); initials != "" {
		face := surface.Face(canvas.Bold, height(corner)*0.42)
		surface.TextInBox(face, initials, corner, legibleOn(primary, plate), canvas.AlignCenter)
	}

	left, right := reserveSides(m.px(60), m.W-m.px(60), corner, m.px(28))
	cx := m.W / 2
	y := m.px(84)

	if crew.ClubName != "" {
		face, club := surface.FitFace(canvas.Bold, utils.Upper(crew.ClubName), right-left, m.px(78), m.px(30))
		y += canvas.Ascent(face)
		surface.Text(face, club, cx, y, contrast, canvas.AlignCenter)
		y += canvas.Descent(face) + m.px(4)
	}

	face, title := surface.FitFace(canvas.BoldItalic, utils.Upper(designation(crew, seats)), right-left, m.px(48), m.px(22))
	y += canvas.Ascent(face)
	surface.Text(face, title, cx, y, accent, canvas.AlignCenter)
	y += canvas.Descent(face) + m.px(8)

	face = surface.Face(canvas.Medium, m.px(26))
	race := utils.Upper(raceLine(crew, seats))
	tracking := m.px(3)
	if canvas.MeasureSpaced(face, race, tracking) > right-left {
		tracking = 0
		race = canvas.FitText(face, race, right-left)
	}
	y += canvas.Ascent(face)
	surface.SpacedText(face, race, cx, y, tracking, contrast, canvas.AlignCenter)
	y += canvas.Descent(face)

	y = math.Max(y, corner.URy+m.px(8)) + m.px(26)
	for i := -1; i <= 1; i++ {
		x := cx + float64(i)*m.px(70)
		surface.FillPath(canvas.ChevronPath(rect.Rect{LLx: x - m.px(30), LLy: y, URx: x + m.px(30), URy: y + m.px(30)}, m.px(10)), accent)
	}
	y += m.px(50)

	if cox, ok := seats.Cox(); ok {
		y = s.coxBadge(surface, m, cox, y, accent)
	}

	bandTop := m.H - m.px(96)
	rosterBottom := bandTop - m.px(24)
	if crew.CoachName != "" {
		rosterBottom = bandTop - m.px(88)
		s.coachPlate(surface, m, crew.CoachName, rect.Rect{LLx: m.px(60), LLy: bandTop - m.px(72), URx: m.W - m.px(60), URy: bandTop - m.px(18)}, contrast)
	}

	area := rect.Rect{LLx: m.px(60), LLy: y, URx: m.W - m.px(60), URy: rosterBottom}
	for _, c := range rosterCells(area, seats, m.px(28), m.px(14), m.px(90), 0.85) {
		s.panel(surface, m, c, accent)
	}

	band := rect.Rect{LLx: m.px(20), LLy: bandTop, URx: m.W - m.px(20), URy: m.H - m.px(20)}
	surface.FillRect(band, cfg.Colors.Secondary)
	onBand := utils.ContrastOn(cfg.Colors.Secondary)
	surface.TextInBox(surface.Face(canvas.Bold, m.px(40)), seats.Class.Code, rect.Rect{LLx: m.px(60), LLy: band.LLy, URx: band.URx, URy: band.URy}, onBand, canvas.AlignLeft)
	oars := vec.Vec2{X: m.W - m.px(110), Y: (band.LLy + band.URy) / 2}
	surface.FillPath(canvas.CrossedOarsPath(oars, m.px(96), m.px(5), 25), onBand)
}

// coxBadge draws a star seal marked COX beside a panel with the cox's name and
// returns the y below it
func (s Bold) coxBadge(surface *canvas.Canvas, m metrics, cox roster.Seat, y float64, accent color.RGBA) float64 {
	radius := m.px(46)
	center := vec.Vec2{X: m.px(60) + radius, Y: y + radius}
	surface.FillPath(canvas.StarPath(center, radius, radius*0.78, 14), accent)
	seal := rect.Rect{LLx: center.X - radius, LLy: center.Y - radius, URx: center.X + radius, URy: center.Y + radius}
	surface.TextInBox(surface.Face(canvas.Bold, m.px(22)), utils.Upper(cox.Label), seal, utils.ContrastOn(accent), canvas.AlignCenter)

	skew := m.px(16)
	panel := rect.Rect{
		LLx: seal.URx + m.px(16), LLy: center.Y - m.px(32),
		URx: math.Min(m.W-m.px(60), seal.URx+m.px(520)) - skew, URy: center.Y + m.px(32),
	}
	surface.FillPath(canvas.ParallelogramPath(panel, skew), plate)
	face := surface.Face(canvas.Bold, m.px(32))
	name := FitName(face, utils.Upper(cox.Name), s.NameBudget(), width(panel)-m.px(40))
	inner := rect.Rect{LLx: panel.LLx + m.px(20), LLy: panel.LLy, URx: panel.URx, URy: panel.URy}
	surface.TextInBox(face, name, inner, ink, canvas.AlignLeft)

	return seal.URy + m.px(20)
}

// coachPlate writes COACH on the ground and the coach's name on a white plate after it
func (Bold) coachPlate(surface *canvas.Canvas, m metrics, coach string, row rect.Rect, labelColor color.RGBA) {
	face := surface.Face(canvas.Bold, m.px(28))
	labelW := surface.TextInBox(face, "COACH", row, labelColor, canvas.AlignLeft)

	skew := math.Min(m.px(14), height(row)*0.25)
	box := rect.Rect{
		LLx: row.LLx + labelW + m.px(18), LLy: row.LLy,
		URx: math.Min(row.URx, row.LLx+labelW+m.px(560)) - skew, URy: row.URy,
	}
	if width(box) <= 0 {
		return
	}
	surface.FillPath(canvas.ParallelogramPath(box, skew), plate)
	name := canvas.FitText(face, utils.Upper(coach), width(box)-m.px(36))
	surface.TextInBox(face, name, rect.Rect{LLx: box.LLx + m.px(18), LLy: row.LLy, URx: box.URx, URy: row.URy}, ink, canvas.AlignLeft)
}

// panel draws one seat: a skewed accent block with the seat label and a white
// name panel beside it
func (s Bold) panel(surface *canvas.Canvas, m metrics, c cell, accent color.RGBA) {
	b := c.Box
	rowH := height(b)
	skew := math.Min(m.px(16), rowH*0.25)
	labelW := width(b) * 0.3

	block := rect.Rect{LLx: b.LLx, LLy: b.LLy, URx: b.LLx + labelW, URy: b.URy}
	surface.FillPath(canvas.ParallelogramPath(block, skew), accent)
	labelFace := surface.Face(canvas.Bold, math.Min(rowH*0.36, m.px(26)))
	label := canvas.FitText(labelFace, utils.Upper(c.Seat.Label), labelW-skew-m.px(8))
	surface.TextInBox(labelFace, label, rect.Rect{LLx: block.LLx + skew/2, LLy: block.LLy, URx: block.URx + skew/2, URy: block.URy}, utils.ContrastOn(accent), canvas.AlignCenter)

	namePanel := rect.Rect{LLx: block.URx + m.px(8), LLy: b.LLy, URx: b.URx - skew, URy: b.URy}
	surface.FillPath(canvas.ParallelogramPath(namePanel, skew), plate)
	face := surface.Face(canvas.Bold, math.Min(rowH*0.44, m.px(38)))
	name := FitName(face, utils.Upper(c.Seat.Name), s.NameBudget(), width(namePanel)-m.px(28))
	surface.TextInBox(face, name, rect.Rect{LLx: namePanel.LLx + m.px(16), LLy: b.LLy, URx: namePanel.URx, URy: b.URy}, ink, canvas.AlignLeft)
}
