// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deathrange/internal/datenorm"
	"github.com/pdiddy/deathrange/internal/logging"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize DATE...",
	Short: "Show how date text is normalized",
	Long: `Normalize runs each argument through the date normalizer and prints the
canonical text, the resulting date, its fidelity and the parse attempt that
matched. It fails only if none of the arguments could be read.`,
	Example: `  deathrange normalize "14 FEB 1879" "JAN 1983" "circa 1850s-ish"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := datenorm.New(currentYear(cfg))
		failed := explainDates(cmd.OutOrStdout(), n, args, log)
		if failed == len(args) {
			return fmt.Errorf("no date could be normalized")
		}
		return nil
	},
}

// explainDates writes one line per raw date and returns how many failed.
func explainDates(w io.Writer, n *datenorm.Normalizer, raws []string, lg logging.Logger) int {
	fmt.Fprintf(w, "%-24s  %-24s  %-10s  %-18s  %s\n", "Input", "Canonical", "Date", "Fidelity", "Attempt")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	failed := 0
	for _, raw := range raws {
		d, attempt, err := n.Explain(raw)
		if err != nil {
			failed++
			lg.Warn("invalid date format", logging.String("raw", raw))
			fmt.Fprintf(w, "%-24s  %-24s  %-10s  %-18s  %s\n", raw, datenorm.Canonicalize(raw), "-", "-", "failed")
			continue
		}
		fmt.Fprintf(w, "%-24s  %-24s  %-10s  %-18s  %s\n", raw, datenorm.Canonicalize(raw), d, d.Fidelity, attempt)
	}
	return failed
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
