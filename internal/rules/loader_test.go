package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyscan/polyscan/internal/lang"
	"github.com/polyscan/polyscan/internal/types"
)

const sampleDoc = `
rules:
  - id: PY-TEST-001
    language: python
    match: literal
    pattern: "eval("
    severity: CRITICAL
    title: Use of eval
  - id: PY-TEST-002
    language: python
    match: regex
    pattern: 'except\s*:'
    severity: HIGH
    title: Bare except
  - id: PY-TEST-003
    language: python
    match: predicate
    pattern: line-longer-than:10
    severity: LOW
    title: Long line
`

func TestParse_AllPatternKinds(t *testing.T) {
	rs, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, rs, 3)

	assert.Equal(t, KindLiteral, rs[0].Pattern.Kind())
	assert.Equal(t, KindRegex, rs[1].Pattern.Kind())
	assert.Equal(t, KindPredicate, rs[2].Pattern.Kind())
	assert.Equal(t, types.SevCritical, rs[0].Severity)
	assert.Equal(t, lang.Python, rs[0].Language)

	if m, ok := rs[0].Pattern.Find("x = eval(input())"); !ok || m != "eval(" {
		t.Fatalf("literal Find = %q, %v", m, ok)
	}
	if m, ok := rs[1].Pattern.Find("except :"); !ok || m == "" {
		t.Fatalf("regex Find = %q, %v", m, ok)
	}
	if _, ok := rs[2].Pattern.Find("short"); ok {
		t.Fatal("predicate should not fire on a short line")
	}
	if _, ok := rs[2].Pattern.Find("a line well past ten chars"); !ok {
		t.Fatal("predicate should fire on a long line")
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad regex":      "rules:\n  - {id: A, language: go, match: regex, pattern: '[', severity: LOW, title: t}\n",
		"bad language":   "rules:\n  - {id: A, language: cobol, match: literal, pattern: x, severity: LOW, title: t}\n",
		"bad severity":   "rules:\n  - {id: A, language: go, match: literal, pattern: x, severity: URGENT, title: t}\n",
		"bad kind":       "rules:\n  - {id: A, language: go, match: fuzzy, pattern: x, severity: LOW, title: t}\n",
		"bad predicate":  "rules:\n  - {id: A, language: go, match: predicate, pattern: nonsense, severity: LOW, title: t}\n",
		"empty document": "rules: []\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected parse error", name)
		}
	}
}

func TestPredicates(t *testing.T) {
	tw, err := NewPredicate("trailing-whitespace")
	require.NoError(t, err)
	if _, ok := tw.Find("clean line"); ok {
		t.Fatal("no trailing whitespace expected")
	}
	if _, ok := tw.Find("dirty line  "); !ok {
		t.Fatal("trailing whitespace expected")
	}
	if _, err := NewPredicate("line-longer-than:zero"); err == nil {
		t.Fatal("expected error for non-numeric argument")
	}
}

func TestBuiltin(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	// Every supported language ships with at least one rule.
	for _, l := range lang.Supported() {
		assert.NotEmptyf(t, cat.RulesFor(l), "language %s has no builtin rules", l)
	}

	r, ok := cat.Rule("PY-EVAL-001")
	require.True(t, ok)
	assert.Equal(t, types.SevCritical, r.Severity)
	assert.Equal(t, lang.Python, r.Language)

	// All severities in the catalog are valid and every rule has a title.
	for _, id := range cat.IDs() {
		r, _ := cat.Rule(id)
		assert.Truef(t, r.Severity.Valid(), "rule %s has invalid severity", id)
		assert.NotEmptyf(t, r.Title, "rule %s has no title", id)
	}
}
