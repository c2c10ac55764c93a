// Package report turns per-file results into a scan summary and renders it.
package report

import (
	"sort"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/polyscan/polyscan/internal/types"
)

// Aggregate merges per-file reports into a scan-level summary. File reports
// are ordered by path; within a file, a (rule id, line) pair is kept once,
// first occurrence wins. Identical findings in different files are all kept,
// each is independently actionable.
func Aggregate(reports []types.FileReport) types.ScanSummary {
	sorted := make([]types.FileReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	counts := map[types.Severity]int{}
	total := 0
	for i := range sorted {
		sorted[i].Matches = dedupe(sorted[i].Matches)
		for _, m := range sorted[i].Matches {
			counts[m.Severity]++
			total++
		}
	}

	return types.ScanSummary{
		FilesScanned:     len(sorted),
		TotalFindings:    total,
		CountsBySeverity: counts,
		Files:            sorted,
	}
}

// dedupe keeps the first match per (rule id, line) and restores the
// (line, rule id) ordering invariant.
func dedupe(ms []types.Match) []types.Match {
	if len(ms) < 2 {
		return ms
	}
	seen := make(map[uint64]bool, len(ms))
	out := ms[:0]
	for _, m := range ms {
		key := matchKey(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].RuleID < out[j].RuleID
	})
	return out
}

func matchKey(m types.Match) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(m.RuleID)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strconv.Itoa(m.Line))
	return d.Sum64()
}
