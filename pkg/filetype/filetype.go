// Package filetype recognizes source and text files by name.
package filetype

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions are matched case-insensitively against a file's extension.
var DefaultExtensions = []string{
	".py", ".js", ".ts", ".jsx", ".tsx", ".java", ".c", ".cpp", ".cs", ".go", ".rb", ".php",
	".swift", ".kt", ".rs", ".scala", ".html", ".css", ".scss", ".sass", ".less",
	".sql", ".sh", ".bash", ".yml", ".yaml", ".json", ".xml", ".md", ".txt",
	".gitignore", ".dockerignore", ".env", ".ini", ".cfg", ".conf",
}

// DefaultFilenames are matched exactly against a file's base name.
var DefaultFilenames = []string{
	"Dockerfile", "docker-compose.yml", "package.json", "requirements.txt",
	"Gemfile", "Pipfile", "Cargo.toml", "pom.xml", "build.gradle",
}

// Classifier decides whether a path is a recognized source or text file.
type Classifier struct {
	extensions map[string]bool
	filenames  map[string]bool
}

// New creates a Classifier from the defaults plus extra extensions and names.
// Extensions may be given with or without the leading dot.
func New(extraExtensions, extraFilenames []string) *Classifier {
	c := &Classifier{
		extensions: make(map[string]bool, len(DefaultExtensions)+len(extraExtensions)),
		filenames:  make(map[string]bool, len(DefaultFilenames)+len(extraFilenames)),
	}
	for _, ext := range append(append([]string(nil), DefaultExtensions...), extraExtensions...) {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.extensions[strings.ToLower(ext)] = true
	}
	for _, name := range append(append([]string(nil), DefaultFilenames...), extraFilenames...) {
		c.filenames[name] = true
	}
	return c
}

// Default returns a Classifier with only the built-in sets.
func Default() *Classifier {
	return New(nil, nil)
}

// IsCodeFile reports whether path has a recognized extension or name.
// The file's content is never inspected.
func (c *Classifier) IsCodeFile(path string) bool {
	base := filepath.Base(path)
	if c.filenames[base] {
		return true
	}
	return c.extensions[strings.ToLower(filepath.Ext(base))]
}
