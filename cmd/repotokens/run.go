package main

import (
	"fmt"
	"log"

	"github.com/pario-ai/repotokens/pkg/budget"
	"github.com/pario-ai/repotokens/pkg/config"
	"github.com/pario-ai/repotokens/pkg/filetype"
	"github.com/pario-ai/repotokens/pkg/ignore"
	"github.com/pario-ai/repotokens/pkg/models"
	"github.com/pario-ai/repotokens/pkg/pricing"
	"github.com/pario-ai/repotokens/pkg/report"
	"github.com/pario-ai/repotokens/pkg/scan"
	"github.com/pario-ai/repotokens/pkg/tokencount"
	"github.com/pario-ai/repotokens/pkg/tracker"
	"github.com/pario-ai/repotokens/pkg/walker"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	model      string
	json       bool
	maxTokens  int64
	verbose    bool
}

func run(cmd *cobra.Command, args []string, opts options) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("max-tokens") {
		cfg.Budget.MaxTokens = opts.maxTokens
	}

	logger := log.New(cmd.ErrOrStderr(), "repotokens: ", 0)

	rules, err := ignore.Load(root, ignore.Options{
		IgnoreFile: cfg.IgnoreFile,
		NoDefaults: !cfg.Ignore.Defaults,
		Extra:      cfg.Ignore.Patterns,
	})
	if err != nil {
		return err
	}

	tok, err := tokencount.New(cfg.Tokenizer)
	if err != nil {
		return err
	}

	w := walker.New(root, rules, filetype.New(cfg.Extensions, cfg.Filenames))
	w.Logger = logger
	w.Verbose = opts.verbose

	counter := tokencount.NewCounter(tok)
	counter.Logger = logger
	counter.Verbose = opts.verbose

	format := report.Text
	if opts.json {
		format = report.JSON
	}
	rep := report.New(cmd.OutOrStdout(), format)

	var writeErr error
	agg, err := scan.Run(w.Files(), counter, tracker.New(false), func(rec models.FileRecord) {
		if writeErr == nil {
			writeErr = rep.File(rec)
		}
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}
	if writeErr != nil {
		return writeErr
	}
	if err := rep.Totals(agg); err != nil {
		return err
	}

	table := pricing.NewTable(pricing.DefaultEntries, cfg.Pricing...)
	costs, err := selectCosts(table, agg.TotalTokens, opts.model)
	if err != nil {
		return err
	}
	if err := rep.Costs(agg, costs); err != nil {
		return err
	}

	var budgetErr error
	enforcer := budget.New(cfg.Budget, table)
	if enforcer.Enabled() {
		status, err := enforcer.Status(agg)
		if err != nil {
			return err
		}
		if err := rep.Budget(status); err != nil {
			return err
		}
		budgetErr = enforcer.Check(agg)
	}

	if err := rep.Flush(); err != nil {
		return err
	}
	return budgetErr
}

// selectCosts prices total under model, or under every entry when model is empty.
func selectCosts(table *pricing.Table, total int64, model string) ([]models.CostEstimate, error) {
	if model == "" {
		return table.CalculateAll(total), nil
	}
	c, err := table.Calculate(total, model)
	if err != nil {
		return nil, err
	}
	return []models.CostEstimate{c}, nil
}
