package models

// FileRecord is the token count of a single processed file.
// A record with a non-nil Err is a failed count and always carries zero tokens.
type FileRecord struct {
	Path   string `json:"path"`
	Tokens int    `json:"tokens"`
	Err    error  `json:"-"`
}

// Failed reports whether the file could not be read or decoded.
func (r FileRecord) Failed() bool {
	return r.Err != nil
}

// Aggregate summarizes one walk.
type Aggregate struct {
	TotalTokens int64        `json:"total_tokens"`
	FileCount   int          `json:"processed_files"`
	FailedCount int          `json:"failed_files"`
	Files       []FileRecord `json:"files,omitempty"`
}

// ByPath returns the retained records as a path to token count map.
func (a Aggregate) ByPath() map[string]int {
	m := make(map[string]int, len(a.Files))
	for _, f := range a.Files {
		m[f.Path] = f.Tokens
	}
	return m
}
