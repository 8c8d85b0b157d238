// Package tokencount counts the language-model tokens in files.
package tokencount

import (
	"errors"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/pario-ai/repotokens/pkg/models"
)

// ErrInvalidUTF8 is returned for files that are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Counter reads files and counts their tokens.
type Counter struct {
	tok Tokenizer

	// Logger receives per-file warnings. Nil uses log.Default().
	Logger *log.Logger
	// Verbose also logs the size of every file read.
	Verbose bool
}

// NewCounter creates a Counter backed by tok.
func NewCounter(tok Tokenizer) *Counter {
	return &Counter{tok: tok}
}

// Tokenizer returns the backing tokenizer.
func (c *Counter) Tokenizer() Tokenizer { return c.tok }

// Count reads path and counts its tokens. A file that cannot be read, is not
// UTF-8, or fails to tokenize produces a failed record with zero tokens and
// a logged warning; the error is never returned to the caller.
func (c *Counter) Count(path string) models.FileRecord {
	n, err := c.count(path)
	if err != nil {
		c.logger().Printf("error processing %s: %v", path, err)
		return models.FileRecord{Path: path, Err: err}
	}
	return models.FileRecord{Path: path, Tokens: n}
}

// CountTokens returns the token count of path, or 0 if it could not be counted.
func (c *Counter) CountTokens(path string) int {
	return c.Count(path).Tokens
}

func (c *Counter) count(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if c.Verbose {
		c.logger().Printf("read %s (%s)", path, humanize.Bytes(uint64(len(data))))
	}
	if !utf8.Valid(data) {
		return 0, ErrInvalidUTF8
	}
	n, err := c.tok.Count(string(data))
	if err != nil {
		return 0, fmt.Errorf("tokenize: %w", err)
	}
	return n, nil
}

func (c *Counter) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}
