package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spacebattle/internal/storage"
)

// Scoreboard column widths
const (
	rankWidth   = 6
	playerWidth = 16
	scoreWidth  = 8
	levelWidth  = 6
	dateWidth   = 14
)

var (
	scoreTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	scoreFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	scoreEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)

	scoreFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// RenderScoreboard renders a non-interactive high-score table for printing.
// stats may be nil.
func RenderScoreboard(title string, entries []storage.ScoreEntry, stats *storage.GameStats) string {
	var b strings.Builder

	b.WriteString(scoreTitleStyle.Render("HIGH SCORES - " + title))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(scoreFrameStyle.Render(scoreEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(scoreFrameStyle.Render(newScoreTable(entries).View()))
	b.WriteString("\n")

	if stats != nil && stats.GamesCount > 0 {
		footer := fmt.Sprintf("Best: %d by %s  ·  Games: %d  ·  Average: %.0f",
			stats.HighScore, playerName(stats.BestPlayer), stats.GamesCount, stats.AvgScore)
		b.WriteString(scoreFooterStyle.Render(footer))
		b.WriteString("\n")
	}

	return b.String()
}

// newScoreTable builds an unfocused table sized to fit every entry.
func newScoreTable(entries []storage.ScoreEntry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Player", Width: playerWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "Level", Width: levelWidth},
		{Title: "Date", Width: dateWidth},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			playerName(e.Player),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // rows plus the bordered header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a printed table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

func playerName(name string) string {
	if name == "" {
		return "anonymous"
	}
	return name
}
