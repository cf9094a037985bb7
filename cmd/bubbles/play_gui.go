//go:build gui

package main

import (
	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/platform/gui"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

// runWindow plays game in a desktop window until it is closed.
func runWindow(game *bubbles.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	return gui.Run(game, store, cfg, newLogger())
}
