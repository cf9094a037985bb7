//go:build !gui

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
)

func TestRunWindowNeedsGUIBuild(t *testing.T) {
	err := runWindow(bubbles.New(bubbles.ModeChapters), nil, core.DefaultConfig())
	assert.ErrorIs(t, err, errNoWindow)
}
