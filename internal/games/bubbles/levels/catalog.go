// Package levels provides the chapter catalogue and level construction for
// the bubble shooter. This package depends on engine but engine does not
// depend on levels.
package levels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/levels/formats"
)

// Chapter is a titled group of levels.
type Chapter struct {
	Title   string
	Levels  int              // Number of levels in the chapter
	Layouts []formats.Layout // Hand-authored levels, played before generated ones
	Source  string           // File the chapter came from, empty for embedded
}

// Catalog is the ordered list of chapters.
type Catalog struct {
	Chapters []Chapter
}

// Position addresses one level: zero-based chapter and level indices.
type Position struct {
	Chapter int
	Level   int
}

// Label returns the one-based display label, e.g. "Chapter 1 - Level 3".
func (p Position) Label() string {
	return fmt.Sprintf("Chapter %d - Level %d", p.Chapter+1, p.Level+1)
}

// Len returns the number of chapters.
func (c *Catalog) Len() int {
	return len(c.Chapters)
}

// Title returns the title of chapter i, or "" if out of range.
func (c *Catalog) Title(i int) string {
	if i < 0 || i >= len(c.Chapters) {
		return ""
	}
	return c.Chapters[i].Title
}

// Valid reports whether pos addresses an existing level.
func (c *Catalog) Valid(pos Position) bool {
	if pos.Chapter < 0 || pos.Chapter >= len(c.Chapters) {
		return false
	}
	return pos.Level >= 0 && pos.Level < c.Chapters[pos.Chapter].Levels
}

// Normalize maps a stored position onto the catalogue. An unknown chapter
// falls back to the start; an unknown level restarts its chapter.
func (c *Catalog) Normalize(pos Position) Position {
	if pos.Chapter < 0 || pos.Chapter >= len(c.Chapters) {
		return Position{}
	}
	if pos.Level < 0 || pos.Level >= c.Chapters[pos.Chapter].Levels {
		pos.Level = 0
	}
	return pos
}

// Next returns the level after pos. After the last level of a chapter play
// continues with the next chapter. ok is false after the last level overall.
func (c *Catalog) Next(pos Position) (next Position, ok bool) {
	if len(c.Chapters) == 0 {
		return pos, false
	}
	pos = c.Normalize(pos)
	if pos.Level+1 < c.Chapters[pos.Chapter].Levels {
		return Position{Chapter: pos.Chapter, Level: pos.Level + 1}, true
	}
	if pos.Chapter+1 < len(c.Chapters) {
		return Position{Chapter: pos.Chapter + 1}, true
	}
	return pos, false
}

// Build creates the grid for pos. Hand-authored layouts are used when the
// chapter has one at that index; otherwise a random layout is generated.
func (c *Catalog) Build(pos Position, gen GenParams, rng *rand.Rand) (*engine.Grid, error) {
	if !c.Valid(pos) {
		return nil, fmt.Errorf("level %s does not exist: %w", pos.Label(), engine.ErrInvalidLevelLayout)
	}

	ch := c.Chapters[pos.Chapter]
	if pos.Level < len(ch.Layouts) {
		l := ch.Layouts[pos.Level]
		return engine.NewGrid(l.Rows, l.Cols, l.Cells)
	}
	return Generate(gen, rng)
}

// FromChapters converts parsed chapters into catalogue chapters.
func FromChapters(parsed []formats.Chapter, source string) []Chapter {
	out := make([]Chapter, len(parsed))
	for i, p := range parsed {
		out[i] = Chapter{
			Title:   p.Title,
			Levels:  p.Levels,
			Layouts: p.Layouts,
			Source:  source,
		}
	}
	return out
}
