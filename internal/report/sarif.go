package report

import (
	"encoding/json"
	"io"

	"github.com/polyscan/polyscan/internal/rules"
	"github.com/polyscan/polyscan/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

func sevToLevel(s types.Severity) string {
	switch s {
	case types.SevCritical, types.SevHigh:
		return "error"
	case types.SevMedium:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes the summary's findings as SARIF 2.1.0.
func WriteSARIF(w io.Writer, sum types.ScanSummary, cat *rules.Catalog, version string) error {
	run := sarifRun{
		Tool:    sarifTool{Driver: sarifDriver{Name: "polyscan", Version: version}},
		Results: []sarifResult{},
	}
	for _, fr := range sum.Files {
		for _, m := range fr.Matches {
			text := m.RuleID
			if cat != nil {
				if r, ok := cat.Rule(m.RuleID); ok && r.Title != "" {
					text = r.Title
				}
			}
			run.Results = append(run.Results, sarifResult{
				RuleID:  m.RuleID,
				Level:   sevToLevel(m.Severity),
				Message: sarifMessage{Text: text},
				Locations: []sarifLoc{{
					PhysicalLocation: sarifPhys{
						ArtifactLocation: sarifArt{URI: fr.Path},
						Region:           sarifRegion{StartLine: m.Line},
					},
				}},
			})
		}
	}
	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
