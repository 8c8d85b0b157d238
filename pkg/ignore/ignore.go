// Package ignore decides which paths under a root are excluded from a walk.
//
// Three pattern forms are supported:
//
//	build/      directory rule: any path segment starting with "build"
//	/src/*.gen  anchored rule: the whole relative path must match
//	*.log       generic rule: matched as a suffix of the relative path
//
// Globs follow fnmatch rules, so "*" also matches path separators.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Kind is the form of an ignore pattern.
type Kind int

const (
	// KindGeneric patterns match as a suffix of the relative path.
	KindGeneric Kind = iota
	// KindDirectory patterns end in "/" and match path segment prefixes.
	KindDirectory
	// KindAnchored patterns start with "/" and match the full relative path.
	KindAnchored
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindAnchored:
		return "anchored"
	default:
		return "generic"
	}
}

// Pattern is a parsed ignore rule.
type Pattern struct {
	Raw  string
	Kind Kind

	name string // directory rules: Raw without the trailing "/"
	g    glob.Glob
}

// ParsePattern classifies raw and compiles its glob.
func ParsePattern(raw string) Pattern {
	p := Pattern{Raw: raw}
	switch {
	case strings.HasSuffix(raw, "/"):
		p.Kind = KindDirectory
		p.name = strings.TrimSuffix(raw, "/")
	case strings.HasPrefix(raw, "/"):
		p.Kind = KindAnchored
		p.g = compile("", raw[1:])
	default:
		p.Kind = KindGeneric
		p.g = compile("*", raw)
	}
	return p
}

// compile builds a separator-agnostic glob of prefix+expr. If the glob syntax
// rejects expr it is matched literally after prefix.
func compile(prefix, expr string) glob.Glob {
	g, err := glob.Compile(prefix + expr)
	if err != nil {
		return glob.MustCompile(prefix + glob.QuoteMeta(expr))
	}
	return g
}

// Match reports whether rel, a slash-separated path relative to the root,
// is matched by the pattern.
func (p Pattern) Match(rel string) bool {
	if p.Kind == KindDirectory {
		for _, part := range strings.Split(rel, "/") {
			if strings.HasPrefix(part, p.name) {
				return true
			}
		}
		return false
	}
	return p.g.Match(rel)
}

// Options controls how a RuleSet is loaded.
type Options struct {
	// IgnoreFile is read from the root if present. Empty disables it.
	IgnoreFile string
	// NoDefaults drops DefaultPatterns.
	NoDefaults bool
	// Extra patterns appended after the ignore file.
	Extra []string
}

// RuleSet is an immutable set of patterns anchored at a root directory.
type RuleSet struct {
	root     string
	patterns []Pattern
}

// New builds a RuleSet for root from raw patterns.
func New(root string, patterns []string) *RuleSet {
	rs := &RuleSet{root: root, patterns: make([]Pattern, 0, len(patterns))}
	for _, raw := range patterns {
		rs.patterns = append(rs.patterns, ParsePattern(raw))
	}
	return rs
}

// Load merges the default patterns, the root-level ignore file and any extra
// patterns into a RuleSet. A missing ignore file is not an error.
func Load(root string, opts Options) (*RuleSet, error) {
	var patterns []string
	if !opts.NoDefaults {
		patterns = append(patterns, DefaultPatterns...)
	}

	if opts.IgnoreFile != "" {
		lines, err := ReadFile(filepath.Join(root, opts.IgnoreFile))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		patterns = append(patterns, lines...)
	}

	patterns = append(patterns, opts.Extra...)
	return New(root, patterns), nil
}

// ReadFile returns the patterns of an ignore file, one per line.
// Blank lines and lines starting with "#" are skipped.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ignore file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file: %w", err)
	}
	return lines, nil
}

// Root returns the directory patterns are relative to.
func (rs *RuleSet) Root() string { return rs.root }

// Patterns returns a copy of the parsed patterns.
func (rs *RuleSet) Patterns() []Pattern {
	return append([]Pattern(nil), rs.patterns...)
}

// IsIgnored reports whether path matches any pattern.
// path may be absolute or relative to the working directory, like root.
func (rs *RuleSet) IsIgnored(path string) bool {
	rel, err := filepath.Rel(rs.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, p := range rs.patterns {
		if p.Match(rel) {
			return true
		}
	}
	return false
}
