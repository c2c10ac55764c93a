package core

import (
	"context"

	"github.com/polyscan/polyscan/internal/engine"
	"github.com/polyscan/polyscan/internal/lang"
	"github.com/polyscan/polyscan/internal/rules"
	"github.com/polyscan/polyscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Config     = engine.Config
	Summary    = types.ScanSummary
	FileReport = types.FileReport
	Match      = types.Match
	Severity   = types.Severity
	Language   = lang.Language
	Rule       = rules.Rule
)

// Scan is the stable entrypoint for other programs. A nil Catalog in cfg
// selects the builtin rule catalog.
func Scan(ctx context.Context, cfg Config) (Summary, error) {
	return engine.Scan(ctx, cfg)
}

// Languages returns the set of supported languages.
func Languages() []Language { return lang.Supported() }

// RuleIDs returns the ids of the builtin catalog, sorted.
func RuleIDs() ([]string, error) {
	cat, err := rules.Builtin()
	if err != nil {
		return nil, err
	}
	return cat.IDs(), nil
}

// DescribeRule looks up a builtin rule by id for help and inspection output.
func DescribeRule(id string) (Rule, bool) {
	cat, err := rules.Builtin()
	if err != nil {
		return Rule{}, false
	}
	return cat.Rule(id)
}
