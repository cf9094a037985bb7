package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/levels/formats"
)

//go:embed defaults/*.yaml
var defaultCatalog embed.FS

// Loader reads chapter catalogues from disk.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a loader for the directory or file at root.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{Root: root, Logger: logger}
}

// LoadAll scans Root for catalogue files and concatenates their chapters in
// file name order. Files that fail to parse are skipped with a warning.
// If Root is a single file it is loaded directly.
func (l *Loader) LoadAll() (*Catalog, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.Root, err)
	}
	if !info.IsDir() {
		chapters, err := l.LoadFile(l.Root)
		if err != nil {
			return nil, err
		}
		return &Catalog{Chapters: chapters}, nil
	}

	var paths []string
	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	sort.Strings(paths)

	cat := &Catalog{}
	for _, path := range paths {
		chapters, err := l.LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping level file", "path", path, "err", err)
			continue
		}
		cat.Chapters = append(cat.Chapters, chapters...)
	}

	if cat.Len() == 0 {
		return nil, fmt.Errorf("no chapters found in %s", l.Root)
	}
	return cat, nil
}

// LoadFile loads the chapters of a single catalogue file.
func (l *Loader) LoadFile(path string) ([]Chapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return FromChapters(parsed, path), nil
}

// Default returns the embedded chapter catalogue.
func Default() *Catalog {
	data, err := defaultCatalog.ReadFile("defaults/chapters.yaml")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded catalogue missing: %v", err))
	}
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded catalogue invalid: %v", err))
	}
	return &Catalog{Chapters: FromChapters(parsed, "")}
}

// Load returns the catalogue at path, or the embedded one when path is empty.
func Load(path string, logger *log.Logger) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return NewLoader(path, logger).LoadAll()
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
