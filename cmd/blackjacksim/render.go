package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mfields/blackjacksim/internal/results"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#04B575")).
			Padding(0, 2).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	gainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// renderRunSummary renders the short post-simulation report.
func renderRunSummary(res *results.Results) string {
	summary, err := results.Summarize(res)
	if err != nil {
		return ""
	}
	return renderSummary(res, summary)
}

// renderSummary renders the statistics of one results artifact.
func renderSummary(res *results.Results, s *results.Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(res.Name))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-22s", label)), value))
	}

	row("Games", fmt.Sprintf("%d", s.Games))
	row("Longest game", fmt.Sprintf("%d rounds", s.Rounds))
	row("Avg rounds survived", fmt.Sprintf("%.1f", s.MeanRounds))
	row("Bust rate", fmt.Sprintf("%.1f%%", s.BustPercent))
	row("Starting balance", fmt.Sprintf("%d", res.StartingBalance))
	row("Mean final balance", fmt.Sprintf("%.1f", s.MeanFinal))
	row("Final balance stddev", fmt.Sprintf("%.1f", s.StdDevFinal))

	profit := fmt.Sprintf("%+.1f", s.MeanProfit)
	if s.MeanProfit >= 0 {
		profit = gainStyle.Render(profit)
	} else {
		profit = lossStyle.Render(profit)
	}
	row("Mean profit/loss", profit)

	slope := fmt.Sprintf("%+.2f per round (intercept %.1f)", s.FitSlope, s.FitIntercept)
	if s.FitSlope >= 0 {
		slope = gainStyle.Render(slope)
	} else {
		slope = lossStyle.Render(slope)
	}
	row("Linear fit", slope)

	return strings.TrimRight(b.String(), "\n")
}
