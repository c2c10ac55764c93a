// Package rules defines the rule model and the immutable per-language
// catalog the matcher runs against.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/polyscan/polyscan/internal/lang"
	"github.com/polyscan/polyscan/internal/types"
)

// PatternKind tags the three supported pattern variants.
type PatternKind string

const (
	KindLiteral   PatternKind = "literal"
	KindRegex     PatternKind = "regex"
	KindPredicate PatternKind = "predicate"
)

// Pattern matches a single line of source text. Implementations must be
// safe for concurrent use and linear in the line length.
type Pattern interface {
	// Find returns the matched text and whether the pattern fired on line.
	Find(line string) (string, bool)
	Kind() PatternKind
	Source() string
}

type literalPattern string

func (p literalPattern) Find(line string) (string, bool) {
	if strings.Contains(line, string(p)) {
		return string(p), true
	}
	return "", false
}
func (p literalPattern) Kind() PatternKind { return KindLiteral }
func (p literalPattern) Source() string    { return string(p) }

type regexPattern struct {
	src string
	re  *regexp.Regexp
}

func (p regexPattern) Find(line string) (string, bool) {
	if m := p.re.FindString(line); m != "" {
		return m, true
	}
	return "", false
}
func (p regexPattern) Kind() PatternKind { return KindRegex }
func (p regexPattern) Source() string    { return p.src }

type predicatePattern struct {
	src string
	fn  func(line string) bool
}

func (p predicatePattern) Find(line string) (string, bool) {
	if p.fn(line) {
		return strings.TrimSpace(line), true
	}
	return "", false
}
func (p predicatePattern) Kind() PatternKind { return KindPredicate }
func (p predicatePattern) Source() string    { return p.src }

// NewLiteral builds a substring pattern.
func NewLiteral(s string) (Pattern, error) {
	if s == "" {
		return nil, fmt.Errorf("literal pattern must not be empty")
	}
	return literalPattern(s), nil
}

// NewRegex compiles a Go (RE2) regular expression pattern. RE2 has no
// backtracking, which keeps per-line matching linear.
func NewRegex(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile regex %q: %w", expr, err)
	}
	return regexPattern{src: expr, re: re}, nil
}

// NewPredicate resolves a named built-in line predicate. Supported names:
//
//	line-longer-than:<n>
//	trailing-whitespace
func NewPredicate(name string) (Pattern, error) {
	base, arg, _ := strings.Cut(name, ":")
	switch base {
	case "line-longer-than":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("predicate %q: want positive integer argument", name)
		}
		return predicatePattern{src: name, fn: func(line string) bool {
			return len([]rune(line)) > n
		}}, nil
	case "trailing-whitespace":
		return predicatePattern{src: name, fn: func(line string) bool {
			return line != "" && line != strings.TrimRight(line, " \t")
		}}, nil
	}
	return nil, fmt.Errorf("unknown predicate %q", name)
}

// Rule pairs a line pattern with its metadata. Rules are built once at
// catalog construction and never mutated.
type Rule struct {
	ID          string
	Language    lang.Language
	Severity    types.Severity
	Title       string
	Description string
	Remediation string
	Pattern     Pattern
}
