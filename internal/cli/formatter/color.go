package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ecoquest/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#b8bb26")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Completed and failed counts use the same two colors everywhere.
var (
	StyleCompleted = StyleGreen
	StyleFailed    = StyleOrange
)

// TypeStyle returns the accent style for a challenge type.
func TypeStyle(t domain.ChallengeType) lipgloss.Style {
	switch t {
	case domain.ChallengeConsumption:
		return StylePurple
	case domain.ChallengeWaste:
		return StyleYellow
	case domain.ChallengeElectricity:
		return StyleBlue
	case domain.ChallengeFuel:
		return StyleRed
	default:
		return StyleDim
	}
}

// TypeBadge returns the colored, capitalized type label.
func TypeBadge(t domain.ChallengeType) string {
	if t == "" {
		return StyleDim.Render("--")
	}
	return TypeStyle(t).Render(t.Label())
}

// OutcomePill returns a colored outcome indicator.
func OutcomePill(o domain.Outcome) string {
	switch o {
	case domain.OutcomeCompleted:
		return StyleCompleted.Render("✔ Completed")
	case domain.OutcomeFailed:
		return StyleFailed.Render("✖ Failed")
	default:
		return StyleDim.Render(string(o))
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
