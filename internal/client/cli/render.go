package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/champsapp/champs-cli/internal/client/models"
)

// Palette colors, true-color hex values. Two palettes are carried so the CLI
// stays readable on both light and dark terminal backgrounds; the choice is
// persisted under the "theme" settings key.
const (
	darkAccent lipgloss.Color = "#89b4fa"
	darkGreen  lipgloss.Color = "#a6e3a1"
	darkRed    lipgloss.Color = "#f38ba8"
	darkMuted  lipgloss.Color = "#6c7086"

	lightAccent lipgloss.Color = "#1e66f5"
	lightGreen  lipgloss.Color = "#40a02b"
	lightRed    lipgloss.Color = "#d20f39"
	lightMuted  lipgloss.Color = "#8c8fa1"
)

// Theme names accepted by the theme command.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Styles bundles the lipgloss styles every renderer and notification uses.
// Build one with NewStyles; the zero value renders unstyled text.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Notice lipgloss.Style
	Error  lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles builds the style set for the given theme name. Unknown names
// fall back to the light palette, matching the persisted default.
func NewStyles(theme string) Styles {
	accent, green, red, muted := lightAccent, lightGreen, lightRed, lightMuted
	if theme == ThemeDark {
		accent, green, red, muted = darkAccent, darkGreen, darkRed, darkMuted
	}
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Notice: lipgloss.NewStyle().Foreground(green),
		Error:  lipgloss.NewStyle().Foreground(red),
		Accent: lipgloss.NewStyle().Foreground(accent),
		Muted:  lipgloss.NewStyle().Foreground(muted),
	}
}

// renderTournamentList formats the user's tournaments as an indexed list.
// The currently selected tournament is marked with an arrow.
func renderTournamentList(s Styles, list []*models.Tournament, currentID string) string {
	if len(list) == 0 {
		return s.Muted.Render("no tournaments yet, try 'create'")
	}
	var b strings.Builder
	b.WriteString(s.Header.Render("Your tournaments"))
	b.WriteString("\n")
	for i, t := range list {
		marker := "  "
		name := t.Name
		if t.ID == currentID {
			marker = s.Accent.Render("> ")
			name = s.Accent.Render(name)
		}
		fmt.Fprintf(&b, "%s%2d. %s %s\n", marker, i+1, name,
			s.Muted.Render(fmt.Sprintf("(%d teams, %d groups)", len(t.Teams), t.GroupCount)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// groupView is the slice of the server-computed group structure the
// dashboard needs. Fields the client does not display stay in the raw JSON.
type groupView struct {
	Name  string        `json:"name"`
	Teams []models.Team `json:"teams"`
}

// renderDashboard formats one tournament. Groups are server-computed and
// decoded best-effort; when the payload does not match, the team list is
// shown flat instead of failing the command.
func renderDashboard(s Styles, t *models.Tournament) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(t.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d teams, %d groups, %d playoff spots per group\n",
		s.Muted.Render("setup:"), len(t.Teams), t.GroupCount, t.PlayoffSpots)

	var groups []groupView
	if len(t.Groups) > 0 && json.Unmarshal(t.Groups, &groups) == nil && len(groups) > 0 {
		for _, g := range groups {
			b.WriteString("\n")
			name := g.Name
			if name == "" {
				name = "Group"
			}
			b.WriteString(s.Header.Render(name))
			b.WriteString("\n")
			for _, team := range g.Teams {
				fmt.Fprintf(&b, "  %s\n", team.Name)
			}
		}
	} else {
		b.WriteString("\n")
		b.WriteString(s.Header.Render("Teams"))
		b.WriteString("\n")
		for _, team := range t.Teams {
			fmt.Fprintf(&b, "  %s\n", team.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
