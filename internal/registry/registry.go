// Package registry keeps the set of playable game modes.
// Modes register a factory in init(), so hosts (terminal, SSH, desktop window)
// can list and start them by ID without importing each one.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/bubble-arcade/internal/core"
)

// Game is implemented by every mode the hosts can run.
// Implementations hold pure simulation state; hosts own timing, input mapping
// and drawing to the real output.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score table, e.g. "bubbles".
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset starts a fresh run. It is called before the first Step and
	// again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score and terminal conditions.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, un-reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on an empty or duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
