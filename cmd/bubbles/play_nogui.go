//go:build !gui

package main

import (
	"errors"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

var errNoWindow = errors.New("this binary has no desktop window support; rebuild with -tags gui")

func runWindow(*bubbles.Game, *storage.Store, core.RuntimeConfig) error {
	return errNoWindow
}
