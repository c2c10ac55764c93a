// Package types holds the shared result model: severities, matches, per-file
// reports and the scan summary.
package types

import (
	"fmt"
	"strings"

	"github.com/polyscan/polyscan/internal/lang"
)

// Severity is the risk class of a finding, from CRITICAL down to LOW.
type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
)

var sevRank = map[Severity]int{
	SevCritical: 3,
	SevHigh:     2,
	SevMedium:   1,
	SevLow:      0,
}

// Rank returns the position of s in the severity order; higher is more severe.
func (s Severity) Rank() int { return sevRank[s] }

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool { _, ok := sevRank[s]; return ok }

// AtLeast reports whether s is as severe as min.
func (s Severity) AtLeast(min Severity) bool { return sevRank[s] >= sevRank[min] }

// Severities lists all severities from most to least severe.
func Severities() []Severity {
	return []Severity{SevCritical, SevHigh, SevMedium, SevLow}
}

// ParseSeverity converts user/config input into a Severity.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q (want critical|high|medium|low)", s)
	}
	return sev, nil
}

// Match is a single firing of one rule on one line of one file. Its severity
// always equals the severity of the rule that produced it.
type Match struct {
	RuleID   string   `json:"ruleId"`
	Path     string   `json:"path"`
	Line     int      `json:"line"` // 1-based
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// FileReport is the complete result for one scanned file. A file that could
// not be read or decoded has Scanned=false and ErrorReason set; a clean file
// has Scanned=true and no matches.
type FileReport struct {
	Path        string        `json:"path"`
	Language    lang.Language `json:"language"`
	Matches     []Match       `json:"matches,omitempty"`
	Scanned     bool          `json:"scanned"`
	ErrorReason string        `json:"errorReason,omitempty"`
}

// ScanSummary aggregates every FileReport of one scan invocation.
// CountsBySeverity always sums to TotalFindings.
type ScanSummary struct {
	FilesScanned     int              `json:"filesScanned"`
	TotalFindings    int              `json:"totalFindings"`
	CountsBySeverity map[Severity]int `json:"countsBySeverity"`
	Files            []FileReport     `json:"files"`
}
