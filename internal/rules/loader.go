package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/polyscan/polyscan/internal/lang"
	"github.com/polyscan/polyscan/internal/types"
)

// ruleSpec is the YAML shape of one rule definition.
type ruleSpec struct {
	ID          string `yaml:"id"`
	Language    string `yaml:"language"`
	Match       string `yaml:"match"` // literal | regex | predicate
	Pattern     string `yaml:"pattern"`
	Severity    string `yaml:"severity"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Remediation string `yaml:"remediation"`
}

type catalogSpec struct {
	Rules []ruleSpec `yaml:"rules"`
}

// Parse decodes a YAML rule document and compiles every pattern. Any invalid
// rule fails the whole document; a half-loaded catalog is worse than none.
func Parse(data []byte) ([]Rule, error) {
	var spec catalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse rule document: %w", err)
	}
	if len(spec.Rules) == 0 {
		return nil, fmt.Errorf("rule document contains no rules")
	}
	out := make([]Rule, 0, len(spec.Rules))
	for i, rs := range spec.Rules {
		r, err := compile(rs)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, rs.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func compile(rs ruleSpec) (Rule, error) {
	l, ok := lang.Parse(rs.Language)
	if !ok {
		return Rule{}, fmt.Errorf("unknown language %q", rs.Language)
	}
	sev, err := types.ParseSeverity(rs.Severity)
	if err != nil {
		return Rule{}, err
	}
	var p Pattern
	switch PatternKind(rs.Match) {
	case KindLiteral, "":
		p, err = NewLiteral(rs.Pattern)
	case KindRegex:
		p, err = NewRegex(rs.Pattern)
	case KindPredicate:
		p, err = NewPredicate(rs.Pattern)
	default:
		return Rule{}, fmt.Errorf("unknown match kind %q", rs.Match)
	}
	if err != nil {
		return Rule{}, err
	}
	return Rule{
		ID:          rs.ID,
		Language:    l,
		Severity:    sev,
		Title:       rs.Title,
		Description: rs.Description,
		Remediation: rs.Remediation,
		Pattern:     p,
	}, nil
}

// LoadFile builds a catalog from a YAML rule file on disk.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	rs, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewCatalog(rs)
}
