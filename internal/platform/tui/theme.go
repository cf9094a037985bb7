package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles for the menu and scoreboard screens.
// The playfield itself is colored through core.Color.
type Theme struct {
	// Menu
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemMuted   lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style

	// Scoreboard
	BoardTitle     lipgloss.Style
	BoardBorder    lipgloss.Color
	BoardTab       lipgloss.Style
	BoardTabActive lipgloss.Style
	BoardEmpty     lipgloss.Style
	BoardProgress  lipgloss.Style
	BoardSelected  lipgloss.Style

	// Help line under the playfield
	Help lipgloss.Style
}

// DefaultTheme returns the default colorful theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuControls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		BoardTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		BoardBorder:    lipgloss.Color("240"),
		BoardTab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		BoardTabActive: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true).Padding(0, 1),
		BoardEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		BoardProgress:  lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
		BoardSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.BoardTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.BoardTabActive = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Bold(true).Padding(0, 1)
	theme.BoardProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.BoardSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250"))
	return theme
}

// ThemeByName returns a named theme. Unknown names get the default.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	}
	return DefaultTheme(), false
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
