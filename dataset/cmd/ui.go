package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/visionex-project/textblocks/dataset/impl"
	"github.com/visionex-project/textblocks/dataset/impl/font"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleName    = lipgloss.NewStyle().Foreground(colorWhite).Width(24)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + styleWarning.Render(msg))
}

// One line per font pass, then the totals.
func printSummary(summary impl.Summary) {
	fmt.Println(styleTitle.Render("Generated images"))
	for _, pass := range summary.Passes {
		icon := styleIconSuccess.Render(iconSuccess)
		if pass.Failed > 0 {
			icon = styleIconError.Render(iconError)
		}
		fmt.Println(icon + " " + styleName.Render(pass.Font) + " " + passStats(pass))
	}
	for _, name := range summary.SkippedFonts {
		fmt.Println(styleIconError.Render(iconError) + " " + styleName.Render(name) + " " + styleWarning.Render("failed to load"))
	}
	fmt.Println(styleDim.Render(fmt.Sprintf("%d images, %d failed", summary.Rendered(), summary.Failed())))
}

func passStats(pass impl.PassStats) string {
	line := styleNumber.Render(fmt.Sprintf("%d", pass.Rendered)) + styleDim.Render(" images")
	if pass.Failed > 0 {
		line += styleDim.Render(" · ") + styleWarning.Render(fmt.Sprintf("%d failed", pass.Failed))
	}
	if pass.Degenerate > 0 {
		line += styleDim.Render(" · ") + styleWarning.Render(fmt.Sprintf("%d words dropped", pass.Degenerate))
	}
	return line + styleDim.Render(fmt.Sprintf(" · %d skipped blocks · %s", pass.Skipped, pass.Elapsed.Round(time.Millisecond)))
}

func printCatalog(catalog font.Catalog) {
	fmt.Println(styleTitle.Render(fmt.Sprintf("%d fonts", len(catalog))))
	for _, name := range catalog.Names() {
		fmt.Println(styleIconInfo.Render(iconInfo) + " " + styleName.Render(name) + " " + styleDim.Render(catalog[name]))
	}
}

func printAudit(reports []impl.AuditReport) {
	fmt.Println(styleTitle.Render("OCR audit"))
	for _, report := range reports {
		icon := styleIconSuccess.Render(iconSuccess)
		if report.Mismatched > 0 || report.Failed > 0 {
			icon = styleIconWarning.Render(iconWarning)
		}
		counts := fmt.Sprintf("%d matched · %d mismatched · %d failed", report.Matched, report.Mismatched, report.Failed)
		fmt.Println(icon + " " + styleName.Render(report.Font) + " " + styleDim.Render(counts))
	}
}
