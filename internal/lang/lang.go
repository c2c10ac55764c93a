// Package lang maps file paths to the languages the scanner understands.
package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language identifies a supported source language. The zero value is not
// meaningful; unclassifiable files are Unknown.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	Java       Language = "java"
	C          Language = "c"
	CPP        Language = "cpp"
	Go         Language = "go"
	Rust       Language = "rust"
	Unknown    Language = "unknown"
)

var byExtension = map[string]Language{
	".py":   Python,
	".js":   JavaScript,
	".mjs":  JavaScript,
	".cjs":  JavaScript,
	".java": Java,
	".c":    C,
	".h":    C,
	".cpp":  CPP,
	".cc":   CPP,
	".cxx":  CPP,
	".hpp":  CPP,
	".hh":   CPP,
	".go":   Go,
	".rs":   Rust,
}

// Classify returns the language for a file path based on its extension,
// case-insensitively. Paths with no known extension yield Unknown.
func Classify(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := byExtension[ext]; ok {
		return l
	}
	return Unknown
}

// Supported returns all supported languages in sorted order.
func Supported() []Language {
	seen := map[Language]bool{}
	var out []Language
	for _, l := range byExtension {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Extensions returns the extensions mapped to l, sorted.
func Extensions(l Language) []string {
	var out []string
	for ext, mapped := range byExtension {
		if mapped == l {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// Parse converts a string (as found in rule files) to a Language.
func Parse(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Python:
		return Python, true
	case JavaScript:
		return JavaScript, true
	case Java:
		return Java, true
	case C:
		return C, true
	case CPP:
		return CPP, true
	case Go:
		return Go, true
	case Rust:
		return Rust, true
	}
	return Unknown, false
}
