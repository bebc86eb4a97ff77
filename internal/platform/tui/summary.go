package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// RunSummary is one finished run, as reported by the headless simulator.
type RunSummary struct {
	Run      int
	Score    int
	Duration time.Duration
}

// SummaryTable renders finished runs as a static table.
func SummaryTable(runs []RunSummary) string {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 10},
	}

	rows := make([]table.Row, 0, len(runs)+1)
	best := 0
	for _, r := range runs {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Run),
			strconv.Itoa(r.Score),
			r.Duration.Round(10 * time.Millisecond).String(),
		})
		best = max(best, r.Score)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
	return t.View() + "\n" + fmt.Sprintf("runs: %d  best: %d", len(runs), best)
}
