package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/polyscan/polyscan/internal/lang"
	"github.com/polyscan/polyscan/internal/rules"
	"github.com/polyscan/polyscan/internal/types"
)

func sampleSummary() types.ScanSummary {
	return Aggregate([]types.FileReport{
		{
			Path: "app.py", Language: lang.Python, Scanned: true,
			Matches: []types.Match{
				{RuleID: "PY-EVAL-001", Path: "app.py", Line: 2, Text: "eval(", Severity: types.SevCritical},
			},
		},
		{Path: "bad.py", Language: lang.Python, ErrorReason: "binary content"},
	})
}

func TestPrintSummary_PlainText(t *testing.T) {
	cat, err := rules.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	PrintSummary(&buf, sampleSummary(), cat, PrintOptions{NoColor: true})
	out := buf.String()

	for _, want := range []string{
		"app.py (python)",
		"PY-EVAL-001",
		"CRITICAL",
		"not scanned: binary content",
		"Files scanned: 2",
		"Findings: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummary_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, Aggregate(nil), nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "No findings") {
		t.Fatalf("expected clean report, got:\n%s", buf.String())
	}
}

func TestPrintSummary_NilCatalogFallsBackToRuleID(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, sampleSummary(), nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "PY-EVAL-001") {
		t.Fatalf("expected rule id in report:\n%s", buf.String())
	}
}

func TestPrintSummary_Deterministic(t *testing.T) {
	cat, _ := rules.Builtin()
	var a, b bytes.Buffer
	PrintSummary(&a, sampleSummary(), cat, PrintOptions{NoColor: true})
	PrintSummary(&b, sampleSummary(), cat, PrintOptions{NoColor: true})
	if a.String() != b.String() {
		t.Fatal("identical summaries rendered differently")
	}
}
