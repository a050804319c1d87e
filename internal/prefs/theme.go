// Package prefs keeps the one persisted visitor preference: the colour theme.
package prefs

import (
	"fmt"

	"github.com/Zachkp/folio/internal/domain"
)

// Theme is the page colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ThemeKey is the fixed preference key the theme is stored under.
const ThemeKey = "theme"

// ParseTheme validates a stored or submitted theme value.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, domain.ErrInvalidTheme)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the toggle button label: the theme a click switches to.
func (t Theme) Icon() string {
	if t == Dark {
		return "☀️"
	}
	return "🌙"
}

// Resolve picks the initial theme: a valid stored preference wins, then the
// system preference, then light.
func Resolve(stored, system string) Theme {
	if t, err := ParseTheme(stored); err == nil {
		return t
	}
	if t, err := ParseTheme(system); err == nil {
		return t
	}
	return Light
}
