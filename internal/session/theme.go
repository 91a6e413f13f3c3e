package session

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/pview/internal/palette"
)

// Theme selects the viewer background.
type Theme int

const (
	Light Theme = iota
	Dark
)

var (
	lightBackground = palette.MustHex("F5F5F5")
	darkBackground  = palette.MustHex("181818")
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Background returns the color the viewport is cleared with.
func (t Theme) Background() palette.Color {
	if t == Dark {
		return darkBackground
	}
	return lightBackground
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}
