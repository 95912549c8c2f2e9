// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deathrange/internal/datenorm"
	"github.com/pdiddy/deathrange/internal/extract"
	"github.com/pdiddy/deathrange/internal/logging"
	"github.com/pdiddy/deathrange/internal/prompt"
	"github.com/pdiddy/deathrange/internal/report"
	"github.com/pdiddy/deathrange/internal/search"
	"github.com/pdiddy/deathrange/pkg/types"
)

// errNoSource is returned when neither --file nor the config names a source.
var errNoSource = errors.New("no file selected: pass --file or set source in the config")

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "List people who died within a date range",
	Long: `Query lists the individuals whose death date falls between two dates,
inclusive, ordered by death date.

Give the interval with --start and --end, or name a person with --person to
use their own birth and death dates. When that person lacks one of them,
--birth-fallback / --death-fallback supply it; otherwise the value is asked
for on the terminal unless --no-prompt is set.

Use --save to write the query and its results to a YAML file, and --load to
run a saved query again.`,
	Example: `  deathrange query -f family.ged --start "1 JAN 1950" --end "31 DEC 1950"
  deathrange query -f family.ged --person smith --format table
  deathrange query --load smith.yaml`,
	Args: cobra.NoArgs,
	RunE: runQueryCmd,
}

// queryRun holds everything one query needs, so it can run without cobra.
type queryRun struct {
	params        search.QueryParams
	format        types.OutputFormat
	currentYear   int
	birthFallback string
	deathFallback string
	interactive   bool
	savePath      string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    logging.Logger
	now    func() time.Time
}

func runQueryCmd(cmd *cobra.Command, args []string) error {
	params, err := queryParamsFromFlags(cmd)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(string(cfg.Query.Format))
	if err != nil {
		return err
	}

	birthFallback, _ := cmd.Flags().GetString("birth-fallback")
	deathFallback, _ := cmd.Flags().GetString("death-fallback")
	noPrompt, _ := cmd.Flags().GetBool("no-prompt")
	savePath, _ := cmd.Flags().GetString("save")

	run := queryRun{
		params:        params,
		format:        format,
		currentYear:   currentYear(cfg),
		birthFallback: birthFallback,
		deathFallback: deathFallback,
		interactive:   !noPrompt,
		savePath:      savePath,
		in:            cmd.InOrStdin(),
		out:           cmd.OutOrStdout(),
		errOut:        cmd.ErrOrStderr(),
		log:           log,
		now:           time.Now,
	}
	return run.execute()
}

// queryParamsFromFlags builds the query from --load or from the mode flags.
// A source given on the command line or in the config overrides the one
// stored in a loaded query.
func queryParamsFromFlags(cmd *cobra.Command) (search.QueryParams, error) {
	loadPath, _ := cmd.Flags().GetString("load")
	personName, _ := cmd.Flags().GetString("person")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	var params search.QueryParams
	switch {
	case loadPath != "":
		qf, err := search.ReadQueryFile(loadPath)
		if err != nil {
			return params, err
		}
		params = qf.Query
	case personName != "" && (start != "" || end != ""):
		return params, fmt.Errorf("--person cannot be combined with --start or --end")
	case personName != "":
		params = search.QueryParams{Mode: search.ModePerson, Person: personName}
	case start != "" || end != "":
		params = search.QueryParams{Mode: search.ModeDateRange, Start: start, End: end}
	default:
		return params, fmt.Errorf("query needs --person, or --start and --end, or --load")
	}

	if cfg.Source != "" {
		params.Source = cfg.Source
	}
	return params, params.Validate()
}

func (r queryRun) execute() error {
	if r.params.Source == "" {
		return errNoSource
	}

	records, summary, err := extract.FromFile(r.params.Source)
	if err != nil {
		return err
	}
	r.log.Debug("extracted records",
		logging.String("source", r.params.Source),
		logging.Int("individuals", summary.Individuals),
		logging.Int("other_records", summary.OtherRecords),
		logging.Int("skipped_lines", summary.SkippedLines))

	start, end := r.params.Start, r.params.End
	var personName string
	if r.params.Mode == search.ModePerson {
		rec, err := search.FindPerson(r.params.Person, records)
		if err != nil {
			return err
		}
		personName = rec.DisplayName()

		supplier := prompt.Preset{Start: r.birthFallback, End: r.deathFallback}
		if r.interactive {
			supplier.Next = prompt.New(r.in, r.errOut)
		}
		bounds, err := search.PersonBounds(rec, supplier)
		if err != nil {
			return err
		}
		start, end = bounds.Start, bounds.End
	}

	res, err := search.DeathsInRange(datenorm.New(r.currentYear), start, end, records)
	if err != nil {
		var be *search.BoundError
		if !errors.As(err, &be) {
			return err
		}
		// An unusable bound means nothing can match; report it and fall
		// through to the empty result.
		r.log.Warn("invalid date format",
			logging.String("bound", string(be.Bound)),
			logging.String("raw", be.Raw))
	}
	for _, s := range res.Skipped {
		raw, _ := s.Record.Death()
		r.log.Warn("invalid date format",
			logging.String("name", s.Record.DisplayName()),
			logging.String("raw", raw))
	}

	d := report.NewDeaths(start, end, res)
	d.Person = personName
	if err := report.RenderDeaths(r.out, r.format, d); err != nil {
		return fmt.Errorf("rendering results: %w", err)
	}

	if r.savePath != "" {
		if err := search.WriteQueryFile(r.savePath, search.NewQueryFile(r.params, res, r.now())); err != nil {
			return fmt.Errorf("saving query: %w", err)
		}
		r.log.Info("saved query", logging.String("path", r.savePath))
	}
	return nil
}

func init() {
	queryCmd.Flags().String("person", "", "name fragment of the person whose lifespan bounds the query")
	queryCmd.Flags().String("start", "", "start date of the interval (e.g. '12 JAN 2000')")
	queryCmd.Flags().String("end", "", "end date of the interval (e.g. '12 JAN 2010')")
	queryCmd.Flags().String("birth-fallback", "", "start date to use when the person has no birth date")
	queryCmd.Flags().String("death-fallback", "", "end date to use when the person has no death date")
	queryCmd.Flags().Bool("no-prompt", false, "never ask for missing dates on the terminal")
	queryCmd.Flags().String("save", "", "write the query and its results to a YAML file")
	queryCmd.Flags().String("load", "", "run a query saved with --save")

	rootCmd.AddCommand(queryCmd)
}
