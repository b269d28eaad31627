package cmd

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/edgescope/edgescope/engine"
	"github.com/edgescope/edgescope/market"
)

// UI styles
var (
	judgeBoxStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(1, 2)

	judgeTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED"))

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Width(14)

	longStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	shortStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	flatStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B")).
		Bold(true)

	mutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Italic(true)

	profitStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	lossStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444"))
)

// renderJudgment draws the judgment panel for a symbol.
func renderJudgment(symbol string, j engine.Judgment) string {
	var b strings.Builder

	name := symbol
	if meta, ok := market.Instruments[symbol]; ok {
		name = fmt.Sprintf("%s (%s)", meta.Name, symbol)
	}

	b.WriteString(judgeTitleStyle.Render("判定結果") + "\n\n")
	b.WriteString(labelStyle.Render("銘柄") + name + "\n")
	b.WriteString(labelStyle.Render("疑似ケース") + fmt.Sprintf("%d件", j.PseudoCaseCount) + "\n")
	b.WriteString(labelStyle.Render("推奨方向") + directionLabel(j.Recommendation) + "\n")
	b.WriteString(labelStyle.Render("勝率") + fmtPct(j.WinRate) + "\n")
	b.WriteString(labelStyle.Render("信頼度") + confidenceBar(j.Confidence) + "\n")
	b.WriteString(labelStyle.Render("推定値幅") + fmtExpectedMove(j) + "\n")
	b.WriteString(labelStyle.Render("平均利益") + fmtSignedYen(j.AvgWin) + "\n")
	b.WriteString(labelStyle.Render("平均損失") + fmtSignedYen(j.AvgLoss) + "\n")

	if j.PseudoCaseCount == 0 {
		b.WriteString("\n" + mutedStyle.Render("類似する過去トレードがありません。"))
	} else if j.Recommendation == market.Flat {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("勝率しきい値 %.0f%% を満たす方向がありません。", j.MinWinRate)))
	}

	return judgeBoxStyle.Render(b.String())
}

// directionLabel renders a direction in the journal's display language.
func directionLabel(d market.Direction) string {
	switch d {
	case market.Long:
		return longStyle.Render("ロング")
	case market.Short:
		return shortStyle.Render("ショート")
	case market.Flat:
		return flatStyle.Render("ノーポジ")
	default:
		return string(d)
	}
}

// confidenceBar draws a 20-cell bar plus the percentage.
func confidenceBar(pct float64) string {
	cells := int(math.Round(pct / 5))
	if cells < 0 {
		cells = 0
	}
	if cells > 20 {
		cells = 20
	}
	bar := strings.Repeat("█", cells) + strings.Repeat("░", 20-cells)
	return fmt.Sprintf("%s %.0f%%", bar, pct)
}

// fmtExpectedMove shows the move with the sign of the recommendation.
func fmtExpectedMove(j engine.Judgment) string {
	if j.ExpectedMove == nil {
		return "—"
	}
	sign := "+"
	if j.Recommendation == market.Short {
		sign = "-"
	}
	return fmt.Sprintf("%s%.0f%s", sign, *j.ExpectedMove, j.ExpectedMoveUnit)
}

func fmtPct(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", *p)
}

func fmtSignedYen(p *float64) string {
	if p == nil {
		return "—"
	}
	s := fmt.Sprintf("%+.0f円", *p)
	if *p > 0 {
		return profitStyle.Render(s)
	}
	if *p < 0 {
		return lossStyle.Render(s)
	}
	return s
}

func fmtYen(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%.0f円", *p)
}

func fmtFloat(p *float64) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%g", *p)
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Local().Format("2006-01-02 15:04")
}
