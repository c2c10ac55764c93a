package rules

import (
	"testing"

	"github.com/polyscan/polyscan/internal/lang"
	"github.com/polyscan/polyscan/internal/types"
)

func mustLiteral(t *testing.T, s string) Pattern {
	t.Helper()
	p, err := NewLiteral(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewCatalog_DuplicateIDSameLanguage(t *testing.T) {
	rs := []Rule{
		{ID: "PY-X-001", Language: lang.Python, Severity: types.SevLow, Pattern: mustLiteral(t, "x")},
		{ID: "PY-X-001", Language: lang.Python, Severity: types.SevHigh, Pattern: mustLiteral(t, "y")},
	}
	if _, err := NewCatalog(rs); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewCatalog_SameIDDifferentLanguagesOK(t *testing.T) {
	rs := []Rule{
		{ID: "X-001", Language: lang.Python, Severity: types.SevLow, Pattern: mustLiteral(t, "x")},
		{ID: "X-001", Language: lang.Go, Severity: types.SevLow, Pattern: mustLiteral(t, "x")},
	}
	cat, err := NewCatalog(rs)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 rules, got %d", cat.Len())
	}
}

func TestCatalog_RulesForUnknownEmpty(t *testing.T) {
	cat, err := NewCatalog([]Rule{
		{ID: "X-001", Language: lang.Python, Severity: types.SevLow, Pattern: mustLiteral(t, "x")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := cat.RulesFor(lang.Unknown); len(got) != 0 {
		t.Fatalf("expected no rules for unknown, got %d", len(got))
	}
}

func TestCatalog_OrderStable(t *testing.T) {
	rs := []Rule{
		{ID: "B-002", Language: lang.Go, Severity: types.SevLow, Pattern: mustLiteral(t, "b")},
		{ID: "A-001", Language: lang.Go, Severity: types.SevLow, Pattern: mustLiteral(t, "a")},
	}
	cat, err := NewCatalog(rs)
	if err != nil {
		t.Fatal(err)
	}
	first := cat.RulesFor(lang.Go)
	second := cat.RulesFor(lang.Go)
	if len(first) != 2 || first[0].ID != "B-002" {
		t.Fatalf("definition order not preserved: %v", first)
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatal("rule order changed between calls")
		}
	}
}

func TestCatalog_RejectsEmptyID(t *testing.T) {
	if _, err := NewCatalog([]Rule{{Language: lang.Go, Pattern: mustLiteral(t, "x")}}); err == nil {
		t.Fatal("expected error for empty id")
	}
}
