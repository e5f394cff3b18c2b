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

var (
	parchmentTop    = color.RGBA{R: 0xF4, G: 0xEA, B: 0xD5, A: 0xFF}
	parchmentBottom = color.RGBA{R: 0xE6, G: 0xD5, B: 0xB3, A: 0xFF}
	sepia           = color.RGBA{R: 0x4A, G: 0x40, B: 0x36, A: 0xFF}
)

// Heraldic is the traditional academic style: parchment ground, double
// border, small caps and a crossed-oars footer
type Heraldic struct{}

var _ Renderer = Heraldic{}

func (Heraldic) ID() string      { return "heraldic" }
func (Heraldic) Name() string    { return "Heraldic" }
func (Heraldic) NameBudget() int { return 12 }

func (Heraldic) EmblemRegion(width, height int) rect.Rect {
	return cornerEmblem(width, height, true, 0.15, 0.085)
}

func (h Heraldic) Render(surface *canvas.Canvas, crew models.Crew, seats roster.Assignment, cfg models.TemplateConfig) {
	m := newMetrics(surface.Width(), surface.Height())
	box := surface.Box()
	primary := legibleOn(cfg.Colors.Primary, parchmentTop)
	secondary := legibleOn(cfg.Colors.Secondary, parchmentTop)

	surface.VerticalGradient(box, func(t float64) color.Color {
		return utils.Blend(parchmentTop, parchmentBottom, t)
	})
	surface.Grain(box, 14)

	// double border with corner lozenges
	surface.FillPath(canvas.FramePath(canvas.Inset(box, m.px(28)), canvas.Inset(box, m.px(44))), primary)
	inner := canvas.Inset(box, m.px(56))
	surface.StrokeRect(inner, m.px(3), secondary)
	for _, c := range []vec.Vec2{
		{X: inner.LLx, Y: inner.LLy}, {X: inner.URx, Y: inner.LLy},
		{X: inner.LLx, Y: inner.URy}, {X: inner.URx, Y: inner.URy},
	} {
		surface.FillPath(canvas.DiamondPath(c, m.px(30), m.px(30)), secondary)
		surface.FillPath(canvas.CirclePath(c.X, c.Y, m.px(5)), primary)
	}

	corner := h.EmblemRegion(surface.Width(), surface.Height())
	if cfg.HasEmblem() {
		drawEmblem(surface, cfg, corner)
	} else {
		h.monogram(surface, m, corner, crew.ClubName, primary, secondary)
	}

	left, right := reserveSides(m.px(90), m.W-m.px(90), corner, m.px(16))
	cx := m.W / 2
	y := m.px(110)

	if crew.ClubName != "" {
		face, club := surface.FitFace(canvas.SmallCaps, crew.ClubName, right-left, m.px(64), m.px(26))
		y += canvas.Ascent(face)
		surface.Text(face, club, cx, y, primary, canvas.AlignCenter)
		y += canvas.Descent(face) + m.px(8)
	}

	face, title := surface.FitFace(canvas.Italic, designation(crew, seats), right-left, m.px(46), m.px(22))
	y += canvas.Ascent(face)
	surface.Text(face, title, cx, y, secondary, canvas.AlignCenter)
	y += canvas.Descent(face) + m.px(6)

	face, race := surface.FitFace(canvas.Regular, raceLine(crew, seats), right-left, m.px(28), m.px(16))
	y += canvas.Ascent(face)
	surface.Text(face, race, cx, y, sepia, canvas.AlignCenter)
	y += canvas.Descent(face)

	y = math.Max(y, corner.URy) + m.px(22)
	h.divider(surface, m, y, primary, secondary)
	y += m.px(30)

	if cox, ok := seats.Cox(); ok {
		bannerW := math.Min(m.W*0.6, m.W-m.px(200))
		banner := rect.Rect{LLx: cx - bannerW/2, LLy: y, URx: cx + bannerW/2, URy: y + m.px(64)}
		notch := m.px(20)
		surface.FillPath(canvas.BannerPath(banner, notch), primary)
		panel := canvas.Inset(banner, m.px(6))
		surface.FillPath(canvas.BannerPath(panel, notch*0.8), parchmentTop)
		badge := surface.Face(canvas.SmallCaps, m.px(30))
		inner := rect.Rect{LLx: panel.LLx + notch, LLy: panel.LLy, URx: panel.URx - notch, URy: panel.URy}
		labelledName(surface, badge, coxLabel(cox), cox.Name, h.NameBudget(), inner, m.px(6), primary, canvas.AlignCenter)
		y = banner.URy + m.px(24)
	}

	rosterBottom := m.H - m.px(190)
	if crew.CoachName != "" {
		rosterBottom = m.H - m.px(240)
		coach := surface.Face(canvas.Italic, m.px(30))
		line := rect.Rect{LLx: m.px(120), LLy: m.H - m.px(236), URx: m.W - m.px(120), URy: m.H - m.px(188)}
		labelledName(surface, coach, "Coached by ", crew.CoachName, 0, line, 0, sepia, canvas.AlignCenter)
	}

	area := rect.Rect{LLx: m.px(100), LLy: y, URx: m.W - m.px(100), URy: rosterBottom}
	for _, c := range rosterCells(area, seats, m.px(40), m.px(14), m.px(92), 0.7) {
		h.entry(surface, m, c, secondary)
	}

	surface.FillPath(canvas.CrossedOarsPath(vec.Vec2{X: cx, Y: m.H - m.px(130)}, m.px(150), m.px(7), 35), primary)
	code := surface.Face(canvas.SmallCaps, m.px(24))
	surface.Text(code, seats.Class.Code, cx, m.H-m.px(72), sepia, canvas.AlignCenter)
}

// entry draws one roster line: seat label in small caps, a lozenge, then the name
func (h Heraldic) entry(surface *canvas.Canvas, m metrics, c cell, accent color.RGBA) {
	b := c.Box
	rowH := height(b)
	labelW := width(b) * 0.32
	midY := (b.LLy + b.URy) / 2

	surface.Line(b.LLx, b.URy, b.URx, b.URy, m.px(1.5), utils.WithAlpha(accent, 110))

	labelFace := surface.Face(canvas.SmallCaps, math.Min(rowH*0.38, m.px(30)))
	label := canvas.FitText(labelFace, c.Seat.Label, labelW-m.px(4))
	surface.TextInBox(labelFace, label, rect.Rect{LLx: b.LLx, LLy: b.LLy, URx: b.LLx + labelW, URy: b.URy}, accent, canvas.AlignRight)

	surface.FillPath(canvas.DiamondPath(vec.Vec2{X: b.LLx + labelW + m.px(14), Y: midY}, m.px(10), m.px(10)), accent)

	nameX := b.LLx + labelW + m.px(30)
	nameFace := surface.Face(canvas.Regular, math.Min(rowH*0.45, m.px(38)))
	name := FitName(nameFace, c.Seat.Name, h.NameBudget(), b.URx-nameX-m.px(6))
	surface.TextInBox(nameFace, name, rect.Rect{LLx: nameX, LLy: b.LLy, URx: b.URx, URy: b.URy}, ink, canvas.AlignLeft)
}

// divider is a rule with a central lozenge flanked by two roundels
func (Heraldic) divider(surface *canvas.Canvas, m metrics, y float64, primary, secondary color.RGBA) {
	cx := m.W / 2
	surface.Line(m.px(110), y, cx-m.px(56), y, m.px(3), primary)
	surface.Line(cx+m.px(56), y, m.W-m.px(110), y, m.px(3), primary)
	surface.FillPath(canvas.DiamondPath(vec.Vec2{X: cx, Y: y}, m.px(26), m.px(26)), secondary)
	surface.FillPath(canvas.CirclePath(cx-m.px(40), y, m.px(5)), primary)
	surface.FillPath(canvas.CirclePath(cx+m.px(40), y, m.px(5)), primary)
}

// monogram fills the emblem corner with a shield bearing the club initials
func (Heraldic) monogram(surface *canvas.Canvas, m metrics, corner rect.Rect, club string, primary, secondary color.RGBA) {
	shield := canvas.Inset(corner, width(corner)*0.12)
	surface.FillPath(canvas.ShieldPath(shield), primary)
	surface.FillPath(canvas.ShieldPath(canvas.Inset(shield, m.px(6))), secondary)
	surface.FillPath(canvas.ShieldPath(canvas.Inset(shield, m.px(10))), primary)

	initials := utils.Initials(club, 2)
	if initials == "" {
		return
	}
	face := surface.Face(canvas.SmallCaps, height(shield)*0.34)
	top := rect.Rect{LLx: shield.LLx, LLy: shield.LLy, URx: shield.URx, URy: shield.LLy + height(shield)*0.75}
	surface.TextInBox(face, initials, top, utils.ContrastOn(primary), canvas.AlignCenter)
}
