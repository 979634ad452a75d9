package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Terminal palette colors, readable on light and dark backgrounds
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	ColorDefault = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}

	// Message styles
	StyleSuccess lipgloss.Style
	StyleWarning lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style

	// Report styles
	StyleTitle     lipgloss.Style
	StyleHeader    lipgloss.Style
	StyleAccent    lipgloss.Style
	StyleExtension lipgloss.Style

	// Table styles, rebuilt by SetTheme
	styleTableHeader lipgloss.Style
	styleTableRule   lipgloss.Style
	styleTableRow    lipgloss.Style
	styleTableRowAlt lipgloss.Style

	IconSuccess = "✔"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconFile    = "📄"
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the color_theme setting ("auto", "dark", "light")
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleInfo = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleTitle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleExtension = lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)

	styleTableHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	styleTableRule = lipgloss.NewStyle().Foreground(ColorMuted)
	styleTableRow = lipgloss.NewStyle().Foreground(ColorDefault)
	styleTableRowAlt = lipgloss.NewStyle().Foreground(ColorDefault).Faint(true)
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return StyleInfo.Render(IconInfo + " " + msg)
}

// FormatWarning is used for skipped files and empty selections
func FormatWarning(msg string) string {
	return StyleWarning.Render(IconWarning + " " + msg)
}

// FormatMuted returns muted text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}

// FormatExtension highlights a file type label such as ".jpeg" or "(none)"
func FormatExtension(ext string) string {
	return StyleExtension.Render(ext)
}
