package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/polyscan/polyscan/internal/types"
)

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, sampleSummary(), nil, "1.2.3"); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name    string `json:"name"`
					Version string `json:"version"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}
	if doc.Version != "2.1.0" {
		t.Fatalf("version = %s", doc.Version)
	}
	if len(doc.Runs) != 1 || doc.Runs[0].Tool.Driver.Name != "polyscan" {
		t.Fatalf("unexpected run/tool: %+v", doc.Runs)
	}
	res := doc.Runs[0].Results
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	if res[0].RuleID != "PY-EVAL-001" || res[0].Level != "error" {
		t.Fatalf("unexpected result: %+v", res[0])
	}
	if res[0].Locations[0].PhysicalLocation.Region.StartLine != 2 {
		t.Fatalf("unexpected start line: %+v", res[0].Locations[0])
	}
}

func TestSevToLevel(t *testing.T) {
	cases := map[types.Severity]string{
		types.SevCritical: "error",
		types.SevHigh:     "error",
		types.SevMedium:   "warning",
		types.SevLow:      "note",
	}
	for sev, want := range cases {
		if got := sevToLevel(sev); got != want {
			t.Errorf("sevToLevel(%s) = %s, want %s", sev, got, want)
		}
	}
}
