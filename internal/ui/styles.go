// Package ui provides terminal output styling for the scd CLI.
package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple, configurable): paths, scene names, highlights
// - Muted (gray): secondary info, counts, hints
// - No colored success/error/warning: unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// accentColor is the active accent, empty when disabled.
	accentColor = defaultAccent

	// Accent style for file paths, scene names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, counts
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

// ConfigureTheme applies the configured accent color. "none", "off",
// "default", and the empty string disable the accent entirely.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		if isDisabledAccent(accent) {
			accentColor = ""
			Accent = lipgloss.NewStyle()
			AccentBold = lipgloss.NewStyle().Bold(true)
		}
		return
	}

	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color, ok=false when disabled.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

func isDisabledAccent(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "default":
		return true
	}
	return false
}

// normalizeAccentColor validates an accent value: ANSI color codes
// ("0" to "255") or hex colors ("#RGB" / "#RRGGBB", expanded to 6 digits).
func normalizeAccentColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || isDisabledAccent(s) {
		return "", false
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if !isHex(hex) {
			return "", false
		}
		switch len(hex) {
		case 3:
			var b strings.Builder
			for _, c := range hex {
				b.WriteRune(c)
				b.WriteRune(c)
			}
			return "#" + strings.ToLower(b.String()), true
		case 6:
			return "#" + strings.ToLower(hex), true
		}
		return "", false
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return strconv.Itoa(n), true
	}
	return "", false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
