// Package render formata o resultado do pipeline para o terminal
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vfg2006/business-advisor-api/internal/domain"
	"github.com/vfg2006/business-advisor-api/pkg/utils"
)

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorSuccess = lipgloss.Color("#04B575")
	colorError   = lipgloss.Color("#FF4672")
	colorWarning = lipgloss.Color("#F5A623")
	colorMuted   = lipgloss.Color("#8A8A8A")
)

type styles struct {
	container lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	profit    lipgloss.Style
	loss      lipgloss.Style
	alert     lipgloss.Style
	muted     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(20),
		value: lipgloss.NewStyle().
			Bold(true),
		profit: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),
		loss: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
		alert: lipgloss.NewStyle().
			Foreground(colorWarning),
		muted: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
	}
}

// Result monta os painéis de métricas e de recomendações
func Result(result *domain.PipelineResult) string {
	s := defaultStyles()

	return lipgloss.JoinVertical(lipgloss.Left,
		s.container.Render(metricsPanel(s, result.Processed, len(result.RawData))),
		s.container.Render(advisoryPanel(s, result.Recommendation)),
	)
}

func metricsPanel(s styles, m *domain.MetricsSnapshot, records int) string {
	rows := []struct {
		label string
		value string
	}{
		{"Profit", utils.FormatDecimal(m.Profit)},
		{"Sales change", utils.FormatDecimal(m.SalesPctChange) + "%"},
		{"Cost change", utils.FormatDecimal(m.CostPctChange) + "%"},
		{"CAC today", utils.FormatDecimal(m.TodayCAC)},
		{"CAC yesterday", utils.FormatDecimal(m.YesterdayCAC)},
		{"CAC increase", utils.FormatDecimal(m.CACIncreasePct) + "%"},
	}

	lines := []string{s.title.Render(fmt.Sprintf("Metrics (%d records)", records))}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(row.label), s.value.Render(row.value)))
	}

	return strings.Join(lines, "\n")
}

func advisoryPanel(s styles, a *domain.AdvisoryResult) string {
	status := s.profit.Render(strings.ToUpper(string(a.ProfitOrLoss)))
	if a.ProfitOrLoss == domain.StatusLoss {
		status = s.loss.Render(strings.ToUpper(string(a.ProfitOrLoss)))
	}

	lines := []string{
		s.title.Render("Advisory"),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("Status"), status),
		"",
		s.title.Render("Alerts"),
	}
	lines = append(lines, bulletList(s, a.Alerts, s.alert, "no alerts")...)
	lines = append(lines, "", s.title.Render("Recommendations"))
	lines = append(lines, bulletList(s, a.Recommendations, s.value.UnsetBold(), "no recommendations")...)

	return strings.Join(lines, "\n")
}

func bulletList(s styles, items []string, style lipgloss.Style, empty string) []string {
	if len(items) == 0 {
		return []string{s.muted.Render(empty)}
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, style.Render("• "+item))
	}
	return lines
}
