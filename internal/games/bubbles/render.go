package bubbles

import (
	"math"
	"strconv"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
)

// Screen layout in terminal rows.
const (
	hudHeight    = 2
	footerHeight = 1
	minScreenW   = 30
	minScreenH   = 16
)

// ColorFor maps a sphere color to the platform palette.
func ColorFor(c engine.Color) core.Color {
	switch c {
	case engine.ColorRed:
		return core.ColorBrightRed
	case engine.ColorGreen:
		return core.ColorBrightGreen
	case engine.ColorBlue:
		return core.ColorBrightBlue
	case engine.ColorPurple:
		return core.ColorBrightMagenta
	default:
		return core.ColorWhite
	}
}

// Resize adapts the canvas mapping to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.resize(dst.Width(), dst.Height())
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.session == nil {
		if g.loadErr != nil {
			g.renderOverlay(dst, "Level failed to load", "Check the levels file")
		}
		return
	}

	g.renderField(dst)
	g.renderFooter(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", "All chapters cleared! R to play again")
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to retry "+g.Label())
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title() + " | " + g.Label()
	if title := g.ChapterTitle(); title != "" {
		hud += " (" + title + ")"
	}
	hud += " | Score: " + strconv.Itoa(g.score)
	if g.session != nil {
		hud += " | Left: " + strconv.Itoa(g.session.Remaining())
	}
	hud += " | Shots: " + strconv.Itoa(g.Shots())
	dst.DrawTextWithColor(0, 0, hud, core.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	dst.DrawTextWithColor(0, y, " Mouse/←→: Aim | Click/Space: Fire | P: Pause | B: Menu", core.ColorGray)
}

// renderField draws walls, grid, aim line, shooter, projectile and sparks.
func (g *Game) renderField(dst *core.Screen) {
	used := g.view.Used()
	for y := used.Y; y < used.Bottom(); y++ {
		dst.SetWithColor(used.X-1, y, '│', core.ColorGray)
		dst.SetWithColor(used.Right(), y, '│', core.ColorGray)
	}

	opts := g.session.Options()
	m := opts.Metrics
	rows, cols := g.session.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coord := engine.RC(r, c)
			cell := g.session.CellAt(coord)
			if !cell.Filled {
				continue
			}
			center := m.CellCenter(coord)
			g.drawDisc(dst, center.X, center.Y, m.Radius, '█', ColorFor(cell.Color))
		}
	}

	g.renderAimLine(dst)

	sh := g.session.Shooter()
	g.drawDisc(dst, sh.X, sh.Y, sh.Radius, '░', core.ColorGray)

	p := g.session.Projectile()
	if p.Moving {
		g.drawDisc(dst, p.X, p.Y, m.Radius, '█', ColorFor(p.Color))
	} else {
		// Idle projectile sits on the shooter; draw it smaller so the shooter stays visible.
		g.drawDisc(dst, p.X, p.Y, sh.Radius*0.6, '●', ColorFor(p.Color))
	}

	for _, sp := range g.particles.Particles() {
		x, y := g.view.ToScreen(sp.X, sp.Y)
		ch := '*'
		if sp.Alpha < 0.5 {
			ch = '·'
		}
		dst.SetWithColor(x, y, ch, ColorFor(sp.Color))
	}
}

// renderAimLine draws a dotted segment from the shooter to the aim point.
func (g *Game) renderAimLine(dst *core.Screen) {
	if g.session.Projectile().Moving {
		return
	}
	origin := g.session.Shooter().Origin()
	aim := g.session.Aim()
	d := aim.Sub(origin)
	length := d.Len()
	if length == 0 {
		return
	}

	step := g.view.Scale()
	used := g.view.Used()
	for t := step * 2; t <= length; t += step {
		x := origin.X + d.X/length*t
		y := origin.Y + d.Y/length*t
		sx, sy := g.view.ToScreen(x, y)
		if !used.Contains(sx, sy) {
			break
		}
		if dst.GetCell(sx, sy).Rune == ' ' {
			dst.SetWithColor(sx, sy, '·', core.ColorWhite)
		}
	}
}

// drawDisc fills every cell whose center lies within r of (cx, cy).
// A disc smaller than one cell still marks the cell under its center.
func (g *Game) drawDisc(dst *core.Screen, cx, cy, r float64, ch rune, color core.Color) {
	used := g.view.Used()
	x0, y0 := g.view.ToScreen(cx-r, cy-r)
	x1, y1 := g.view.ToScreen(cx+r, cy+r)

	drawn := false
	for y := max(y0, used.Y); y <= min(y1, used.Bottom()-1); y++ {
		for x := max(x0, used.X); x <= min(x1, used.Right()-1); x++ {
			px, py := g.view.ToCanvas(x, y)
			if math.Hypot(px-cx, py-cy) <= r {
				dst.SetWithColor(x, y, ch, color)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := g.view.ToScreen(cx, cy)
		if used.Contains(x, y) {
			dst.SetWithColor(x, y, ch, color)
		}
	}
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := len([]rune(line1))
	if l := len([]rune(line2)); l > w {
		w = l
	}
	box := core.NewRect((dst.Width()-w-4)/2, (dst.Height()-5)/2, w+4, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBoxWithColor(box, core.ColorYellow)
	_, cy := box.Center()
	dst.DrawTextCenteredWithColor(cy-1, line1, core.ColorBrightYellow)
	dst.DrawTextCenteredWithColor(cy+1, line2, core.ColorWhite)
}
