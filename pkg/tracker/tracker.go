package tracker

import (
	"github.com/pario-ai/repotokens/pkg/models"
)

// Tracker folds per-file token counts into an aggregate.
type Tracker interface {
	// Record adds a file's count to the running totals.
	Record(rec models.FileRecord)
	// Total returns the tokens recorded so far.
	Total() int64
	// Summary returns the aggregate of everything recorded.
	Summary() models.Aggregate
}

// MemoryTracker implements Tracker in memory for a single walk.
type MemoryTracker struct {
	keepFiles bool
	total     int64
	files     int
	failed    int
	records   []models.FileRecord
}

// New creates a MemoryTracker. With keepFiles set, every record is retained
// in encounter order and returned by Summary.
func New(keepFiles bool) *MemoryTracker {
	return &MemoryTracker{keepFiles: keepFiles}
}

// Record adds rec to the totals. Failed records count as processed files.
func (t *MemoryTracker) Record(rec models.FileRecord) {
	t.total += int64(rec.Tokens)
	t.files++
	if rec.Failed() {
		t.failed++
	}
	if t.keepFiles {
		t.records = append(t.records, rec)
	}
}

// Total returns the tokens recorded so far.
func (t *MemoryTracker) Total() int64 {
	return t.total
}

// Summary returns the aggregate of everything recorded.
func (t *MemoryTracker) Summary() models.Aggregate {
	agg := models.Aggregate{
		TotalTokens: t.total,
		FileCount:   t.files,
		FailedCount: t.failed,
	}
	if t.keepFiles {
		agg.Files = append([]models.FileRecord(nil), t.records...)
	}
	return agg
}
