// Package scan runs the walk, count and aggregate pipeline over a tree.
package scan

import (
	"iter"

	"github.com/pario-ai/repotokens/pkg/models"
	"github.com/pario-ai/repotokens/pkg/tokencount"
	"github.com/pario-ai/repotokens/pkg/tracker"
)

// Run counts every file yielded by files and records it in t. onFile, if
// non-nil, is called with each record as soon as it is counted. A walk error
// stops the run and is returned with the totals gathered so far.
func Run(files iter.Seq2[string, error], c *tokencount.Counter, t tracker.Tracker, onFile func(models.FileRecord)) (models.Aggregate, error) {
	for path, err := range files {
		if err != nil {
			return t.Summary(), err
		}
		rec := c.Count(path)
		t.Record(rec)
		if onFile != nil {
			onFile(rec)
		}
	}
	return t.Summary(), nil
}
