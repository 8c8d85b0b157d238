package tracker

import (
	"errors"
	"testing"

	"github.com/pario-ai/repotokens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndSummary(t *testing.T) {
	tr := New(true)

	tr.Record(models.FileRecord{Path: "a.py", Tokens: 10})
	tr.Record(models.FileRecord{Path: "b.txt", Tokens: 5})
	tr.Record(models.FileRecord{Path: "bad.md", Err: errors.New("invalid UTF-8")})

	assert.Equal(t, int64(15), tr.Total())

	agg := tr.Summary()
	assert.Equal(t, int64(15), agg.TotalTokens)
	assert.Equal(t, 3, agg.FileCount)
	assert.Equal(t, 1, agg.FailedCount)
	require.Len(t, agg.Files, 3)
	assert.Equal(t, "a.py", agg.Files[0].Path)
	assert.Equal(t, map[string]int{"a.py": 10, "b.txt": 5, "bad.md": 0}, agg.ByPath())
}

func TestTotalEqualsSumOfRecords(t *testing.T) {
	tr := New(true)
	for i := range 50 {
		tr.Record(models.FileRecord{Path: string(rune('a' + i%26)), Tokens: i * 7})
	}

	agg := tr.Summary()
	var sum int64
	for _, f := range agg.Files {
		sum += int64(f.Tokens)
	}
	assert.Equal(t, sum, agg.TotalTokens)
	assert.Equal(t, len(agg.Files), agg.FileCount)
}

func TestSummaryWithoutFiles(t *testing.T) {
	tr := New(false)
	tr.Record(models.FileRecord{Path: "a.py", Tokens: 10})

	agg := tr.Summary()
	assert.Equal(t, int64(10), agg.TotalTokens)
	assert.Equal(t, 1, agg.FileCount)
	assert.Nil(t, agg.Files)
}

func TestEmptySummary(t *testing.T) {
	agg := New(true).Summary()
	assert.Zero(t, agg.TotalTokens)
	assert.Zero(t, agg.FileCount)
	assert.Empty(t, agg.Files)
}
