// Package report renders scan results as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pario-ai/repotokens/pkg/models"
)

// Format selects the report encoding.
type Format int

const (
	// Text streams human-readable lines.
	Text Format = iota
	// JSON buffers the report and writes one document on Flush.
	JSON
)

// Reporter writes a scan report. Sections are written in call order:
// File for each record, then Totals, Costs and optionally Budget, then Flush.
type Reporter struct {
	w      io.Writer
	format Format
	doc    jsonReport
}

type jsonFile struct {
	Path   string `json:"path"`
	Tokens int    `json:"tokens"`
	Error  string `json:"error,omitempty"`
}

type jsonReport struct {
	Files          []jsonFile            `json:"files"`
	TotalTokens    int64                 `json:"total_tokens"`
	ProcessedFiles int                   `json:"processed_files"`
	FailedFiles    int                   `json:"failed_files"`
	Costs          []models.CostEstimate `json:"costs"`
	Budget         *models.BudgetStatus  `json:"budget,omitempty"`
}

// New creates a Reporter writing to w.
func New(w io.Writer, format Format) *Reporter {
	return &Reporter{w: w, format: format, doc: jsonReport{Files: []jsonFile{}}}
}

// File reports one counted file.
func (r *Reporter) File(rec models.FileRecord) error {
	if r.format == JSON {
		f := jsonFile{Path: rec.Path, Tokens: rec.Tokens}
		if rec.Err != nil {
			f.Error = rec.Err.Error()
		}
		r.doc.Files = append(r.doc.Files, f)
		return nil
	}
	_, err := fmt.Fprintf(r.w, "%s: %d tokens\n", rec.Path, rec.Tokens)
	return err
}

// Totals reports the token and file counts.
func (r *Reporter) Totals(agg models.Aggregate) error {
	if r.format == JSON {
		r.doc.TotalTokens = agg.TotalTokens
		r.doc.ProcessedFiles = agg.FileCount
		r.doc.FailedFiles = agg.FailedCount
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nTotal tokens: %d\n", agg.TotalTokens)
	fmt.Fprintf(&b, "Processed files: %d\n", agg.FileCount)
	if agg.FailedCount > 0 {
		fmt.Fprintf(&b, "Unreadable files: %d\n", agg.FailedCount)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Costs reports the estimated cost of agg under each estimate.
func (r *Reporter) Costs(agg models.Aggregate, costs []models.CostEstimate) error {
	if r.format == JSON {
		r.doc.Costs = append(r.doc.Costs, costs...)
		return nil
	}
	_, err := io.WriteString(r.w, formatCosts(agg, costs))
	return err
}

// Budget reports usage against a budget policy.
func (r *Reporter) Budget(s models.BudgetStatus) error {
	if r.format == JSON {
		r.doc.Budget = &s
		return nil
	}
	_, err := io.WriteString(r.w, formatBudget(s))
	return err
}

// Flush writes any buffered output.
func (r *Reporter) Flush() error {
	if r.format != JSON {
		return nil
	}
	if r.doc.Costs == nil {
		r.doc.Costs = []models.CostEstimate{}
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.doc)
}

func formatCosts(agg models.Aggregate, costs []models.CostEstimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nEstimated costs for %d tokens from %d different source files:\n",
		agg.TotalTokens, agg.FileCount)
	for _, c := range costs {
		fmt.Fprintf(&b, "%s:\n", c.Model)
		fmt.Fprintf(&b, "  Input cost: %s\n", FormatCost(c.InputCost))
		fmt.Fprintf(&b, "  Output cost: %s\n", FormatCost(c.OutputCost))
	}
	return b.String()
}

func formatBudget(s models.BudgetStatus) string {
	var b strings.Builder
	b.WriteString("\nBudget:\n")
	if s.Policy.MaxTokens > 0 {
		fmt.Fprintf(&b, "  Tokens: %d of %d (%d remaining)\n", s.Used, s.Policy.MaxTokens, s.Remaining)
	}
	if s.Policy.MaxCost > 0 {
		fmt.Fprintf(&b, "  %s input cost: %s of %s\n", s.Policy.Model, FormatCost(s.Cost), FormatCost(s.Policy.MaxCost))
	}
	if s.Exceeded {
		b.WriteString("  EXCEEDED\n")
	}
	return b.String()
}
