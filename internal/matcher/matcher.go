// Package matcher applies catalog rules to source text, one line at a time.
package matcher

import (
	"bufio"
	"bytes"
	"sort"
	"unicode/utf8"

	"github.com/polyscan/polyscan/internal/lang"
	"github.com/polyscan/polyscan/internal/rules"
	"github.com/polyscan/polyscan/internal/types"
)

// maxLineBytes bounds a single scanned line; minified blobs past this are
// reported as a per-file condition rather than matched.
const maxLineBytes = 1 << 20

// maxSnippetRunes caps how much matched text is carried into a Match.
const maxSnippetRunes = 200

// ScanFile runs every rule for language against each line of data and
// returns the matches ordered by line, then rule id. A rule fires at most
// once per line. Lines that are not valid UTF-8 are skipped; an empty file
// yields no matches and no error. The returned error reports a condition
// that stopped the line scan early (e.g. an oversized line); matches found
// before that point are still returned.
func ScanFile(cat *rules.Catalog, path string, language lang.Language, data []byte) ([]types.Match, error) {
	rs := cat.RulesFor(language)
	if len(rs) == 0 || len(data) == 0 {
		return nil, nil
	}

	var out []types.Match
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		txt := sc.Text()
		if !utf8.ValidString(txt) {
			continue
		}
		for _, r := range rs {
			m, ok := r.Pattern.Find(txt)
			if !ok {
				continue
			}
			out = append(out, types.Match{
				RuleID:   r.ID,
				Path:     path,
				Line:     line,
				Text:     clip(m),
				Severity: r.Severity,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].RuleID < out[j].RuleID
	})
	return out, sc.Err()
}

func clip(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSnippetRunes {
		return s
	}
	return string(runes[:maxSnippetRunes]) + "…"
}
