package engine

import (
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/polyscan/polyscan/internal/lang"
)

type target struct {
	abs      string
	rel      string // slash-separated, relative to the root
	language lang.Language
}

// collectTargets walks the tree and selects the files worth scanning:
// regular, classifiable, within size limits, and not excluded. Unsupported
// files are skipped entirely and never produce a FileReport.
func collectTargets(cfg Config) ([]target, error) {
	var out []target
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}
		if d.IsDir() {
			if p == cfg.Root {
				return nil
			}
			if !cfg.Recursive {
				return filepath.SkipDir
			}
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		l := lang.Classify(p)
		if l == lang.Unknown {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		rel = filepath.ToSlash(rel)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		if info, ierr := d.Info(); ierr == nil && info.Size() > cfg.MaxBytes {
			return nil
		}
		out = append(out, target{abs: p, rel: rel, language: l})
		return nil
	})
	return out, err
}

func looksBinary(b []byte) bool {
	const sniff = 8000
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// allowedByGlobs returns true if the path passes the include/exclude glob
// configuration. Include globs, if provided, act as a positive filter;
// exclude globs are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(relPath, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(relPath, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
