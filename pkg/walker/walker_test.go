package walker

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/pario-ai/repotokens/pkg/filetype"
	"github.com/pario-ai/repotokens/pkg/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative slash paths) under a new temp root.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	}
	return root
}

func collect(t *testing.T, w *Walker) []string {
	t.Helper()
	var got []string
	for path, err := range w.Files() {
		require.NoError(t, err)
		rel, err := filepath.Rel(w.Root(), path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)
	return got
}

func newWalker(t *testing.T, root string) *Walker {
	t.Helper()
	rs, err := ignore.Load(root, ignore.Options{IgnoreFile: ".gitignore"})
	require.NoError(t, err)
	return New(root, rs, filetype.Default())
}

func TestFiles(t *testing.T) {
	root := writeTree(t,
		"a.py",
		"b.txt",
		"logo.png",
		"node_modules/c.js",
		"node_modules/deep/d.js",
		"src/main.go",
		"src/vendor/lib.go",
		"app.log",
	)

	got := collect(t, newWalker(t, root))
	assert.Equal(t, []string{"a.py", "b.txt", "src/main.go"}, got)
}

func TestFilesHonorsIgnoreFile(t *testing.T) {
	root := writeTree(t,
		"keep.md",
		"gen/api.go",
		"secret.txt",
		"docs/guide.md",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("gen/\n/secret.txt\n"), 0644))

	// ".gitignore" itself is a code file, but the ".git/" default rule is a
	// segment prefix match and excludes it.
	got := collect(t, newWalker(t, root))
	assert.Equal(t, []string{"docs/guide.md", "keep.md"}, got)
}

type countingIgnorer struct {
	rs   *ignore.RuleSet
	seen []string
}

func (c *countingIgnorer) IsIgnored(path string) bool {
	c.seen = append(c.seen, path)
	return c.rs.IsIgnored(path)
}

func TestPrunesBeforeDescending(t *testing.T) {
	root := writeTree(t, "main.go", "build/x/y/z.go", "build/a.go")
	ig := &countingIgnorer{rs: ignore.New(root, []string{"build/"})}

	w := New(root, ig, filetype.Default())
	got := collect(t, w)
	assert.Equal(t, []string{"main.go"}, got)

	for _, p := range ig.seen {
		rel, _ := filepath.Rel(root, p)
		assert.NotContains(t, filepath.ToSlash(rel), "build/", "visited %s inside pruned directory", rel)
	}
}

func TestFilesIsRestartable(t *testing.T) {
	root := writeTree(t, "a.go", "b.go", "c.go")
	w := newWalker(t, root)

	var first []string
	for path, err := range w.Files() {
		require.NoError(t, err)
		first = append(first, path)
		break
	}
	assert.Len(t, first, 1)

	assert.Len(t, collect(t, w), 3)
	assert.Len(t, collect(t, w), 3)
}

func TestFilesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	w := New(root, ignore.New(root, nil), filetype.Default())

	var errs []error
	for path, err := range w.Files() {
		assert.Empty(t, path)
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}

func TestSymlinkedDirectoryNotYielded(t *testing.T) {
	root := writeTree(t, "real/a.go")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link.go")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got := collect(t, newWalker(t, root))
	assert.Equal(t, []string{"real/a.go"}, got)
}

func TestVerboseLogsPrunedDirectories(t *testing.T) {
	root := writeTree(t, "node_modules/a.js", "a.js")
	var buf bytes.Buffer

	w := newWalker(t, root)
	w.Logger = log.New(&buf, "", 0)
	w.Verbose = true
	collect(t, w)

	assert.Contains(t, buf.String(), "pruned "+filepath.Join(root, "node_modules"))
}
