// Package formats provides level catalogue file parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/engine"
	"gopkg.in/yaml.v3"
)

// YAMLCatalog represents the YAML structure for a chapter catalogue file.
type YAMLCatalog struct {
	Chapters []YAMLChapter `yaml:"chapters"`
}

// YAMLChapter is one chapter entry. Levels is the number of levels; explicit
// layouts are played first and the remainder is generated.
type YAMLChapter struct {
	Title   string       `yaml:"title"`
	Levels  int          `yaml:"levels"`
	Layouts []YAMLLayout `yaml:"layouts,omitempty"`
}

// YAMLLayout is a hand-authored level. Each row is a string of R G B P and -.
type YAMLLayout struct {
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// Chapter is a parsed chapter.
type Chapter struct {
	Title   string
	Levels  int
	Layouts []Layout
}

// Layout is a parsed, validated level layout.
type Layout struct {
	Name  string
	Rows  int
	Cols  int
	Cells [][]engine.Cell
}

// ParseYAML parses a chapter catalogue file.
// A layout that is not a well-formed rectangle fails the whole file.
func ParseYAML(data []byte) ([]Chapter, error) {
	var cat YAMLCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(cat.Chapters) == 0 {
		return nil, fmt.Errorf("no chapters defined")
	}

	chapters := make([]Chapter, 0, len(cat.Chapters))
	for i, yc := range cat.Chapters {
		ch := Chapter{
			Title:  yc.Title,
			Levels: yc.Levels,
		}
		if ch.Title == "" {
			ch.Title = fmt.Sprintf("Chapter %d", i+1)
		}

		for j, yl := range yc.Layouts {
			layout, err := parseLayout(yl)
			if err != nil {
				return nil, fmt.Errorf("chapter %q layout %d: %w", ch.Title, j+1, err)
			}
			ch.Layouts = append(ch.Layouts, layout)
		}

		// Levels never counts fewer than the explicit layouts.
		if ch.Levels < len(ch.Layouts) {
			ch.Levels = len(ch.Layouts)
		}
		if ch.Levels <= 0 {
			return nil, fmt.Errorf("chapter %q has no levels", ch.Title)
		}
		chapters = append(chapters, ch)
	}

	return chapters, nil
}

func parseLayout(yl YAMLLayout) (Layout, error) {
	cells, err := engine.ParseLayout(yl.Rows)
	if err != nil {
		return Layout{}, err
	}
	cols := 0
	if len(cells) > 0 {
		cols = len(cells[0])
	}
	// NewGrid performs the shape check.
	if _, err := engine.NewGrid(len(cells), cols, cells); err != nil {
		return Layout{}, err
	}
	return Layout{
		Name:  yl.Name,
		Rows:  len(cells),
		Cols:  cols,
		Cells: cells,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
