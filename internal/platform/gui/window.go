//go:build gui

// Package gui hosts the bubble shooter in a desktop window with Ebitengine.
// The window shows the canvas at its native size; the mouse aims and
// fires, the keyboard mirrors the terminal controls.
package gui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

// maxCatchUp bounds the ticks run in one frame after a stall.
const maxCatchUp = 5

var (
	background = color.RGBA{0x10, 0x12, 0x1c, 0xff}
	wallColor  = color.RGBA{0x50, 0x50, 0x60, 0xff}
	aimColor   = color.RGBA{0xdd, 0xdd, 0xdd, 0x80}
	dimColor   = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// Window adapts a bubbles.Game to ebiten.Game.
type Window struct {
	game   *bubbles.Game
	store  *storage.Store
	logger *log.Logger
	clock  *engine.Clock

	width, height int
	last          time.Time
	cursorX       int
	cursorY       int
	input         core.InputFrame
	state         core.GameState
	scoreSaved    bool
	quit          bool
}

// NewWindow resets game with cfg and prepares a window for it.
func NewWindow(game *bubbles.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	// The cell viewport is unused here, but a tiny one pauses the game.
	cfg.ScreenW, cfg.ScreenH = max(cfg.ScreenW, 80), max(cfg.ScreenH, 24)
	game.Reset(cfg)
	canvas := game.Config().Canvas

	return &Window{
		game:   game,
		store:  store,
		logger: logger,
		clock:  engine.NewClock(cfg.TickRate, maxCatchUp),
		width:  int(math.Ceil(canvas.Width)),
		height: int(math.Ceil(canvas.Height)),
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// Update gathers input and runs as many fixed ticks as wall time allows.
func (w *Window) Update() error {
	if w.quit {
		return ebiten.Termination
	}

	now := time.Now()
	if w.last.IsZero() {
		w.last = now
	}
	dt := now.Sub(w.last)
	w.last = now

	w.collectInput()
	if w.input.Has(core.ActionQuit) {
		w.quit = true
		return ebiten.Termination
	}

	ticks := w.clock.Advance(dt)
	for range ticks {
		res := w.game.Step(w.input)
		w.state = res.State
		w.afterStep()
		// Edge-triggered actions apply to the first tick only.
		w.input.Clear()
	}
	return nil
}

// collectInput merges this frame's input into the pending frame, so a
// press between ticks is not lost.
func (w *Window) collectInput() {
	x, y := ebiten.CursorPosition()
	if x != w.cursorX || y != w.cursorY {
		w.cursorX, w.cursorY = x, y
		w.game.AimAt(float64(x), float64(y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.input.Set(core.ActionFire)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		w.input.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		w.input.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.input.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		(inpututil.IsKeyJustPressed(ebiten.KeyEscape) && (w.state.GameOver || w.state.Paused)) {
		w.input.Set(core.ActionQuit)
	}
}

// afterStep saves the score once per finished run.
func (w *Window) afterStep() {
	if !w.state.GameOver {
		w.scoreSaved = false
		return
	}
	if w.scoreSaved || w.state.Score <= 0 {
		return
	}
	w.scoreSaved = true
	if w.store == nil {
		return
	}
	if _, err := w.store.SaveScore(w.game.ID(), w.state.Score); err != nil {
		w.logger.Warn("cannot save score", "game", w.game.ID(), "err", err)
	}
}

// Draw renders the playfield at canvas resolution.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	s := w.game.Session()
	if s != nil {
		w.drawField(screen, s)
	}

	hud := fmt.Sprintf("%s  %s\nScore: %d", w.game.Title(), w.game.Label(), w.state.Score)
	if s != nil {
		hud += fmt.Sprintf("  Left: %d", s.Remaining())
	}
	ebitenutil.DebugPrint(screen, hud)

	switch {
	case s == nil:
		w.drawOverlay(screen, "Level failed to load", "Check the levels file")
	case w.state.Won:
		w.drawOverlay(screen, "You Win!", "R to play again, Q to quit")
	case w.state.GameOver:
		w.drawOverlay(screen, "Game Over", "R to retry, Q to quit")
	case w.state.Paused:
		w.drawOverlay(screen, "Paused", "P to continue")
	}
}

func (w *Window) drawField(screen *ebiten.Image, s *engine.Session) {
	opts := s.Options()
	m := opts.Metrics
	fw, fh := float32(opts.Width), float32(opts.Height)
	vector.StrokeLine(screen, 0, 0, 0, fh, 2, wallColor, false)
	vector.StrokeLine(screen, fw, 0, fw, fh, 2, wallColor, false)

	rows, cols := s.Dims()
	for r := range rows {
		for c := range cols {
			coord := engine.RC(r, c)
			cell := s.CellAt(coord)
			if !cell.Filled {
				continue
			}
			center := m.CellCenter(coord)
			fillCircle(screen, center.X, center.Y, m.Radius-1, sphereColor(cell.Color, 0xff))
		}
	}

	sh := s.Shooter()
	p := s.Projectile()
	if !p.Moving {
		aim := s.Aim()
		vector.StrokeLine(screen, float32(sh.X), float32(sh.Y), float32(aim.X), float32(aim.Y), 1, aimColor, true)
	}
	vector.StrokeCircle(screen, float32(sh.X), float32(sh.Y), float32(sh.Radius), 2, wallColor, true)
	px, py := p.X, p.Y
	if p.Moving && !w.state.Paused {
		// Draw between ticks using the time already banked in the clock.
		alpha := w.clock.Alpha()
		px += p.VX * alpha
		py += p.VY * alpha
	}
	fillCircle(screen, px, py, m.Radius-1, sphereColor(p.Color, 0xff))

	for _, sp := range w.game.Particles() {
		a := uint8(core.Clamp(int(sp.Alpha*255), 0, 255))
		fillCircle(screen, sp.X, sp.Y, 3, sphereColor(sp.Color, a))
	}
}

// drawOverlay dims the field and prints two centered lines.
func (w *Window) drawOverlay(screen *ebiten.Image, line1, line2 string) {
	vector.DrawFilledRect(screen, 0, float32(w.height)/2-40, float32(w.width), 80, dimColor, false)
	// DebugPrint glyphs are 6 pixels wide.
	ebitenutil.DebugPrintAt(screen, line1, (w.width-6*len(line1))/2, w.height/2-20)
	ebitenutil.DebugPrintAt(screen, line2, (w.width-6*len(line2))/2, w.height/2+4)
}

// Layout keeps the logical screen at canvas size; Ebitengine scales it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// State returns the state after the last tick.
func (w *Window) State() core.GameState {
	return w.state
}

func fillCircle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

// sphereColor converts a sphere color to pixels with the given alpha.
func sphereColor(c engine.Color, alpha uint8) color.RGBA {
	rgba := bubbles.ColorFor(c).RGBA()
	if alpha == 0xff {
		return rgba
	}
	// Premultiplied, as color.RGBA expects.
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(alpha) / 0xff) }
	return color.RGBA{scale(rgba.R), scale(rgba.G), scale(rgba.B), alpha}
}

// Run opens the window and blocks until it is closed.
func Run(game *bubbles.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := NewWindow(game, store, cfg, logger)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
