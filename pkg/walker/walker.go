// Package walker enumerates the files of a directory tree that should be
// token counted.
package walker

import (
	"io/fs"
	"iter"
	"log"
	"os"
	"path/filepath"
)

// Ignorer reports whether a path is excluded.
type Ignorer interface {
	IsIgnored(path string) bool
}

// Classifier reports whether a path is a recognized source file.
type Classifier interface {
	IsCodeFile(path string) bool
}

// Walker yields candidate files under a root directory.
type Walker struct {
	root       string
	ignorer    Ignorer
	classifier Classifier

	// Logger receives warnings about unreadable directories. Nil uses log.Default().
	Logger *log.Logger
	// Verbose also logs every pruned directory.
	Verbose bool
}

// New creates a Walker for root.
func New(root string, ig Ignorer, cls Classifier) *Walker {
	return &Walker{root: root, ignorer: ig, classifier: cls}
}

// Root returns the directory being walked.
func (w *Walker) Root() string { return w.root }

// Files returns the qualifying files under the root. Ignored directories are
// pruned before they are read. Each call starts a new walk.
//
// If the root cannot be read, the sequence yields a single error and ends.
// Unreadable subdirectories are logged and skipped.
func (w *Walker) Files() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == w.root {
					yield("", err)
					return fs.SkipAll
				}
				w.logger().Printf("skipping %s: %v", path, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if path == w.root {
				return nil
			}

			if d.IsDir() {
				if w.ignorer.IsIgnored(path) {
					if w.Verbose {
						w.logger().Printf("pruned %s", path)
					}
					return fs.SkipDir
				}
				return nil
			}

			if d.Type()&fs.ModeSymlink != 0 && isDir(path) {
				return nil
			}

			if w.ignorer.IsIgnored(path) || !w.classifier.IsCodeFile(path) {
				return nil
			}
			if !yield(path, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) logger() *log.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return log.Default()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
