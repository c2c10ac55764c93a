package rules

import (
	"fmt"
	"sort"

	"github.com/polyscan/polyscan/internal/lang"
)

// Catalog is an immutable registry of rules grouped by language. Construct
// one with NewCatalog (or Builtin) and share it by reference; concurrent
// readers need no locking.
type Catalog struct {
	byLang map[lang.Language][]Rule
	byID   map[string]Rule
	total  int
}

// NewCatalog validates and indexes the given rules. Two rules sharing an id
// within the same language is a configuration error and fails construction;
// nothing is registered lazily during a scan.
func NewCatalog(rs []Rule) (*Catalog, error) {
	c := &Catalog{
		byLang: make(map[lang.Language][]Rule),
		byID:   make(map[string]Rule),
	}
	seen := make(map[string]bool, len(rs))
	for _, r := range rs {
		if r.ID == "" {
			return nil, fmt.Errorf("rule for %s has empty id", r.Language)
		}
		if r.Pattern == nil {
			return nil, fmt.Errorf("rule %s has no pattern", r.ID)
		}
		key := string(r.Language) + "\x00" + r.ID
		if seen[key] {
			return nil, fmt.Errorf("duplicate rule id %q for language %s", r.ID, r.Language)
		}
		seen[key] = true
		c.byLang[r.Language] = append(c.byLang[r.Language], r)
		if _, ok := c.byID[r.ID]; !ok {
			c.byID[r.ID] = r
		}
		c.total++
	}
	return c, nil
}

// RulesFor returns the rules for a language in definition order. The result
// is shared and must not be modified. Unknown yields nil.
func (c *Catalog) RulesFor(l lang.Language) []Rule {
	if l == lang.Unknown {
		return nil
	}
	return c.byLang[l]
}

// Rule looks up a single rule by id.
func (c *Catalog) Rule(id string) (Rule, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// IDs returns every rule id in the catalog, sorted.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.byID))
	for id := range c.byID {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Languages returns the languages that have at least one rule, sorted.
func (c *Catalog) Languages() []lang.Language {
	out := make([]lang.Language, 0, len(c.byLang))
	for l := range c.byLang {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the total number of rules.
func (c *Catalog) Len() int { return c.total }
