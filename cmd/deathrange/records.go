// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/deathrange/internal/extract"
	"github.com/pdiddy/deathrange/internal/logging"
	"github.com/pdiddy/deathrange/internal/report"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List the individuals extracted from a GEDCOM file",
	Long: `Records prints every individual found in the source with the raw birth
and death date text exactly as extracted. Use it to check what a query will
see before running one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Source == "" {
			return errNoSource
		}
		format, err := report.ParseFormat(string(cfg.Query.Format))
		if err != nil {
			return err
		}

		records, summary, err := extract.FromFile(cfg.Source)
		if err != nil {
			return err
		}
		log.Info("extracted records",
			logging.String("source", cfg.Source),
			logging.Int("individuals", summary.Individuals),
			logging.Int("skipped_lines", summary.SkippedLines))

		return report.RenderRecords(cmd.OutOrStdout(), format, records)
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
