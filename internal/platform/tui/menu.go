package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

// MenuItem is one selectable entry of the chapter menu.
type MenuItem struct {
	GameID       string
	Title        string
	Description  string
	StartChapter int // -1 resumes saved progress
}

// MenuModel is the Bubble Tea model for the chapter picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	scrollOffset   int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	loadErr        error
	quitting       bool
	selected       *MenuItem // Set when user selects an entry
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing the configured chapters.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	chapters, err := bubbles.Chapters(cfg.LevelsPath)
	if err != nil {
		chapters, _ = bubbles.Chapters("")
	}

	items := make([]MenuItem, 0, len(chapters)+2)
	items = append(items, MenuItem{
		GameID:       bubbles.IDChapters,
		Title:        "Continue",
		Description:  continueDescription(store, cfg.Profile),
		StartChapter: -1,
	})
	for i, ch := range chapters {
		items = append(items, MenuItem{
			GameID:       bubbles.IDChapters,
			Title:        fmt.Sprintf("%d. %s", i+1, ch.Title),
			Description:  fmt.Sprintf("%d levels", ch.Levels),
			StartChapter: i,
		})
	}
	items = append(items, MenuItem{
		GameID:       bubbles.IDEndless,
		Title:        "Endless",
		Description:  "generated levels, denser as you score",
		StartChapter: -1,
	})

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		loadErr:   err,
	}
}

// continueDescription shows where "Continue" resumes.
func continueDescription(store *storage.Store, profile string) string {
	if store == nil {
		return "from the first level"
	}
	p, found, err := store.LoadProgress(profile)
	if err != nil || !found {
		return "from the first level"
	}
	return progressLabel(p)
}

func progressLabel(p storage.Progress) string {
	return fmt.Sprintf("Chapter %d - Level %d", p.Chapter+1, p.Level+1)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is how many entries fit between header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("B U B B L E S"), m.width))
	b.WriteString("\n\n")
	subtitle := "Select a chapter"
	if m.loadErr != nil {
		subtitle = "Levels file unreadable, showing built-in chapters"
	}
	b.WriteString(centerText(theme.MenuSubtitle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	end := min(m.scrollOffset+m.visibleItems(), len(m.items))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(theme.MenuItemMuted.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		item := m.items[i]
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}
		line := style.Render(cursor+item.Title) + "  " + theme.MenuDescription.Render(item.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(centerText(theme.MenuItemMuted.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(theme.MenuControls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config for the selection, including any
// resize seen while the menu was open.
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	if m.selected != nil {
		cfg.StartChapter = m.selected.StartChapter
		cfg.StartLevel = 0
	}
	return cfg
}

// centerText centers text within given width, measuring styled text by
// its printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// Result summarizes how the menu was left.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result
}
