// Package main implements the repotokens command.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "repotokens [directory]",
		Short: "Count LLM tokens in a source tree and estimate their cost",
		Long: `repotokens walks a directory, skips ignored paths and files that are not
source or text, counts the language-model tokens of every remaining file and
estimates what sending or generating that many tokens costs per model.

Ignore rules come from a built-in list and the directory's .gitignore.`,
		Example: `  repotokens
  repotokens ./service --model gpt-4o-mini
  repotokens --json --config repotokens.yaml`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "only show costs for this pricing model")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to repotokens config file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the report as JSON")
	cmd.Flags().Int64Var(&opts.maxTokens, "max-tokens", 0, "fail if the total exceeds this many tokens")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pruned directories and file sizes")

	return cmd
}
