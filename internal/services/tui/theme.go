package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	focusedPane   = paneStyle.BorderForeground(lipgloss.Color("63"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	cursorMark    = "›"
)

// toneColors maps catalog color tokens onto 256-color terminal codes.
var toneColors = map[string]lipgloss.Color{
	"slate":   lipgloss.Color("247"),
	"blue":    lipgloss.Color("33"),
	"sky":     lipgloss.Color("39"),
	"indigo":  lipgloss.Color("63"),
	"purple":  lipgloss.Color("135"),
	"pink":    lipgloss.Color("205"),
	"red":     lipgloss.Color("196"),
	"orange":  lipgloss.Color("208"),
	"amber":   lipgloss.Color("214"),
	"green":   lipgloss.Color("34"),
	"emerald": lipgloss.Color("36"),
	"teal":    lipgloss.Color("37"),
}

func toneColor(token string) lipgloss.Color {
	if color, ok := toneColors[strings.ToLower(strings.TrimSpace(token))]; ok {
		return color
	}
	return toneColors["slate"]
}

func toneStyle(token string, active bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(toneColor(token))
	if active {
		style = style.Bold(true).Underline(true)
	}
	return style
}
