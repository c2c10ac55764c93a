package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/polyscan/polyscan/internal/rules"
	"github.com/polyscan/polyscan/internal/types"
)

// PrintOptions controls the plain-text rendering of a summary.
type PrintOptions struct {
	NoColor  bool
	Snippets bool // syntax-highlight matched snippets
	Duration time.Duration
}

var sevStyles = map[types.Severity]lipgloss.Style{
	types.SevCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	types.SevHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	types.SevMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	types.SevLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

var pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

// PrintSummary renders a full scan report: per-file listings, a severity
// count table, and a footer with scan stats. The catalog supplies rule
// titles; pass nil to fall back to bare rule ids.
func PrintSummary(w io.Writer, sum types.ScanSummary, cat *rules.Catalog, opts PrintOptions) {
	for _, fr := range sum.Files {
		if len(fr.Matches) == 0 && fr.ErrorReason == "" {
			continue
		}
		header := fmt.Sprintf("%s (%s)", fr.Path, fr.Language)
		if !opts.NoColor {
			header = pathStyle.Render(header)
		}
		fmt.Fprintln(w, header)
		if fr.ErrorReason != "" {
			fmt.Fprintf(w, "  !! not scanned: %s\n", fr.ErrorReason)
		}
		for _, m := range fr.Matches {
			sev := string(m.Severity)
			if !opts.NoColor {
				sev = sevStyles[m.Severity].Render(sev)
			}
			title := m.RuleID
			if cat != nil {
				if r, ok := cat.Rule(m.RuleID); ok && r.Title != "" {
					title = r.Title
				}
			}
			snippet := m.Text
			if opts.Snippets && !opts.NoColor {
				snippet = highlightLine(snippet, fr.Path)
			}
			fmt.Fprintf(w, "  %5d  %-8s %-16s %s  %s\n", m.Line, sev, m.RuleID, title, snippet)
		}
		fmt.Fprintln(w)
	}

	if sum.TotalFindings == 0 {
		fmt.Fprintln(w, "No findings ✅")
	} else {
		printSeverityTable(w, sum)
	}
	fmt.Fprintf(w, "Files scanned: %d\n", sum.FilesScanned)
	fmt.Fprintf(w, "Findings: %d\n", sum.TotalFindings)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

func printSeverityTable(w io.Writer, sum types.ScanSummary) {
	tbl := tablewriter.NewTable(w)
	tbl.Header("SEVERITY", "COUNT")
	for _, sev := range types.Severities() {
		tbl.Append([]string{string(sev), strconv.Itoa(sum.CountsBySeverity[sev])})
	}
	tbl.Append([]string{"TOTAL", strconv.Itoa(sum.TotalFindings)})
	tbl.Render()
}
