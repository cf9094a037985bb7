// Package bubbles provides the bubble shooter for the arcade hosts.
// It wires the engine to the chapter catalogue, configuration, particles
// and progress persistence, and draws the playfield into a core.Screen.
package bubbles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-arcade/internal/config"
	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/fx"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/levels"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

// Game IDs.
const (
	IDChapters = "bubbles"
	IDEndless  = "bubbles_endless"
)

// Mode selects how levels are chosen.
type Mode int

const (
	ModeChapters Mode = iota // Walk the chapter catalogue, persisting progress
	ModeEndless              // Generated levels that get denser with score
)

// aimStep is the keyboard aim rotation per tick, in radians.
const aimStep = math.Pi / 90

// minAimLength keeps keyboard aiming usable when the pointer sat on the shooter.
const minAimLength = 200

// ProgressStore persists the current chapter and level.
type ProgressStore interface {
	LoadProgress(profile string) (storage.Progress, bool, error)
	SaveProgress(p storage.Progress) error
}

var (
	progressStore ProgressStore
	logger        = log.Default()
)

// SetProgressStore sets the store used by chapter mode. Nil disables persistence.
func SetProgressStore(ps ProgressStore) {
	progressStore = ps
}

// SetLogger sets the logger for level loading and persistence problems.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(IDChapters, func() registry.Game { return New(ModeChapters) })
	registry.Register(IDEndless, func() registry.Game { return New(ModeEndless) })
}

// Game implements registry.Game for both modes.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.BubblesConfig
	catalog *levels.Catalog
	diff    *config.DifficultyManager
	rng     *rand.Rand

	session   *engine.Session
	particles *fx.System
	pos       levels.Position
	profile   string

	screenW, screenH int
	view             core.Viewport
	tooSmall         bool

	tick     uint64
	score    int
	shots    int
	gameOver bool
	won      bool
	paused   bool
	loadErr  error
}

// New creates a game in the given mode. Call Reset before stepping.
func New(mode Mode) *Game {
	return &Game{mode: mode, cfg: config.DefaultBubblesConfig()}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDChapters
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Bubbles Endless"
	}
	return "Bubbles"
}

// Reset loads configuration and catalogue, then starts the first level.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.shots = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.loadErr = nil
	g.session = nil

	g.profile = rc.Profile
	if g.profile == "" {
		g.profile = storage.DefaultProfile
	}

	cfg, err := config.LoadBubbles(rc.ConfigPath)
	if err != nil {
		logger.Warn("using default config", "path", rc.ConfigPath, "err", err)
		cfg = config.DefaultBubblesConfig()
	}
	preset, ok := config.ParsePreset(rc.Difficulty)
	if !ok {
		logger.Warn("unknown difficulty, using normal", "difficulty", rc.Difficulty)
	}
	config.ApplyBubblesPreset(&cfg, preset)
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.particles = fx.NewSystem(cfg.Particles.Count, cfg.Particles.Decay, g.rng)

	catalog, err := levels.Load(rc.LevelsPath, logger)
	if err != nil {
		logger.Error("cannot load levels, using built-in chapters", "path", rc.LevelsPath, "err", err)
		catalog = levels.Default()
	}
	g.catalog = catalog

	g.pos = g.startPosition(rc)
	g.resize(rc.ScreenW, rc.ScreenH)
	g.loadLevel()
}

// startPosition picks the explicit start level or the saved one.
func (g *Game) startPosition(rc core.RuntimeConfig) levels.Position {
	if g.mode == ModeEndless {
		return levels.Position{}
	}
	if rc.StartChapter >= 0 {
		return g.catalog.Normalize(levels.Position{Chapter: rc.StartChapter, Level: rc.StartLevel})
	}
	if progressStore == nil {
		return levels.Position{}
	}

	p, found, err := progressStore.LoadProgress(g.profile)
	if err != nil {
		logger.Warn("cannot load progress", "profile", g.profile, "err", err)
		return levels.Position{}
	}
	if !found {
		return levels.Position{}
	}
	return g.catalog.Normalize(levels.Position{Chapter: p.Chapter, Level: p.Level})
}

// loadLevel builds the grid for g.pos and starts a new session on it.
func (g *Game) loadLevel() {
	gen := levels.GenParams{
		Rows:      g.cfg.Grid.Rows,
		Cols:      g.cfg.Grid.Cols,
		Occupancy: g.cfg.Grid.Occupancy,
	}
	opts := g.sessionOptions()

	var (
		grid *engine.Grid
		err  error
	)
	if g.mode == ModeEndless {
		gen.Occupancy = g.diff.Occupancy(g.cfg.Grid.Occupancy, g.score, int(g.tick))
		opts.Speed = g.diff.Speed(g.cfg.Physics.Speed, g.score, int(g.tick))
		grid, err = levels.Generate(gen, g.rng)
	} else {
		grid, err = g.catalog.Build(g.pos, gen, g.rng)
	}
	if err == nil {
		g.session, err = engine.NewSession(grid, opts, g.rng)
	}
	if err != nil {
		logger.Error("cannot start level", "level", g.Label(), "err", err)
		g.loadErr = err
		g.session = nil
		g.gameOver = true
		return
	}

	g.particles.Clear()
	g.saveProgress()
}

// sessionOptions converts the loaded config into engine options.
func (g *Game) sessionOptions() engine.Options {
	c := g.cfg
	opts := engine.DefaultOptions(c.Canvas.Width, c.Canvas.Height)
	opts.Metrics = engine.Metrics{Radius: c.Physics.BubbleRadius, Packing: c.Physics.Packing}
	opts.Speed = c.Physics.Speed
	opts.Shooter = engine.Shooter{
		X:      c.Canvas.Width / 2,
		Y:      c.Canvas.Height - c.Canvas.ShooterOffset,
		Radius: c.Canvas.ShooterRadius,
	}
	opts.MinCluster = c.Rules.MinCluster
	opts.DropFloating = c.Rules.DropFloating
	return opts
}

func (g *Game) saveProgress() {
	if g.mode != ModeChapters || progressStore == nil {
		return
	}
	err := progressStore.SaveProgress(storage.Progress{
		Profile: g.profile,
		Chapter: g.pos.Chapter,
		Level:   g.pos.Level,
	})
	if err != nil {
		logger.Warn("cannot save progress", "profile", g.profile, "err", err)
	}
}

// advance moves to the next level after the current one was cleared.
func (g *Game) advance() {
	if g.mode == ModeEndless {
		g.pos.Level++
		g.loadLevel()
		return
	}

	next, ok := g.catalog.Next(g.pos)
	if !ok {
		g.won = true
		g.gameOver = true
		return
	}
	g.pos = next
	g.loadLevel()
}

// resize recomputes the canvas to terminal mapping.
func (g *Game) resize(w, h int) {
	g.screenW, g.screenH = w, h
	area := core.NewRect(0, hudHeight, w, h-hudHeight-footerHeight)
	g.view = core.NewViewport(g.cfg.Canvas.Width, g.cfg.Canvas.Height, area)
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if x, y, ok := in.Pointer(); ok {
		cx, cy := g.view.ToCanvas(x, y)
		g.session.SetAim(cx, cy)
	}
	if in.Has(core.ActionLeft) {
		g.rotateAim(-aimStep)
	}
	if in.Has(core.ActionRight) {
		g.rotateAim(aimStep)
	}
	if in.Has(core.ActionFire) && g.session.Fire() {
		g.shots++
	}

	res := g.session.Step()
	g.particles.Update()

	result := core.StepResult{Lost: res.Lost}
	if ev := res.Attached; ev != nil {
		g.particles.OnAttach(ev)
		removed := len(ev.Removed) + len(ev.Dropped)
		g.score += removed * g.cfg.Rules.PointsPerBubble
		result.Attached = true
		result.Removed = removed

		if ev.Overflow() && g.session.CellAt(ev.Place.Cell).Filled {
			g.gameOver = true
		}
	}

	if res.Cleared && !g.gameOver {
		result.LevelCleared = true
		g.advance()
	}

	result.State = g.State()
	return result
}

// restart replays from the current level, or from the start after a win.
func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = g.rng.Int63()
	rc.ScreenW, rc.ScreenH = g.screenW, g.screenH
	if g.mode == ModeChapters {
		if g.won {
			rc.StartChapter, rc.StartLevel = 0, 0
		} else {
			rc.StartChapter, rc.StartLevel = g.pos.Chapter, g.pos.Level
		}
	}
	g.Reset(rc)
}

// rotateAim turns the aim point around the shooter, staying above it.
func (g *Game) rotateAim(delta float64) {
	origin := g.session.Shooter().Origin()
	d := g.session.Aim().Sub(origin)

	length := math.Max(d.Len(), minAimLength)
	angle := math.Atan2(d.Y, d.X)
	if d.Len() == 0 {
		angle = -math.Pi / 2
	}
	angle = core.ClampF(angle+delta, -math.Pi+0.05, -0.05)

	g.session.SetAim(origin.X+length*math.Cos(angle), origin.Y+length*math.Sin(angle))
}

// AimAt sets the aim point in canvas coordinates. Pixel hosts use this
// instead of cell pointer positions.
func (g *Game) AimAt(x, y float64) {
	if g.session != nil && !g.paused && !g.gameOver {
		g.session.SetAim(x, y)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
		Label:    g.Label(),
	}
}

// Label returns the level label shown in the HUD.
func (g *Game) Label() string {
	if g.mode == ModeEndless {
		return fmt.Sprintf("Endless - Level %d", g.pos.Level+1)
	}
	return g.pos.Label()
}

// Position returns the current chapter and level.
func (g *Game) Position() levels.Position {
	return g.pos
}

// Session exposes the running level for pixel hosts. Nil before Reset
// or when the level failed to load.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Particles returns the live attach sparks.
func (g *Game) Particles() []fx.Particle {
	if g.particles == nil {
		return nil
	}
	return g.particles.Particles()
}

// Config returns the active configuration after presets.
func (g *Game) Config() config.BubblesConfig {
	return g.cfg
}

// ChapterTitle returns the title of the current chapter.
func (g *Game) ChapterTitle() string {
	if g.mode == ModeEndless || g.catalog == nil {
		return ""
	}
	return g.catalog.Title(g.pos.Chapter)
}

// Shots returns the number of projectiles fired this run.
func (g *Game) Shots() int {
	return g.shots
}

// ChapterInfo describes one chapter for menus.
type ChapterInfo struct {
	Title  string
	Levels int
}

// Chapters lists the chapters at levelsPath, or the built-in ones when empty.
func Chapters(levelsPath string) ([]ChapterInfo, error) {
	catalog, err := levels.Load(levelsPath, logger)
	if err != nil {
		return nil, err
	}
	out := make([]ChapterInfo, catalog.Len())
	for i, ch := range catalog.Chapters {
		out[i] = ChapterInfo{Title: ch.Title, Levels: ch.Levels}
	}
	return out, nil
}
