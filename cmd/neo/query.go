package main

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HatemSelim94/NEO/internal/filter"
	"github.com/HatemSelim94/NEO/internal/metrics"
	"github.com/HatemSelim94/NEO/internal/neo"
	"github.com/HatemSelim94/NEO/internal/output"
	"github.com/HatemSelim94/NEO/internal/stream"
)

const dateLayout = "2006-01-02"

var queryFlags struct {
	date      string
	startDate string
	endDate   string

	minDistance float64
	maxDistance float64
	minVelocity float64
	maxVelocity float64
	minDiameter float64
	maxDiameter float64

	hazardous    bool
	notHazardous bool

	limit   int
	outfile string
	stats   bool
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query close approaches matching the given criteria",
	Long: `Query the close-approach set with any combination of date, distance,
velocity, diameter, and hazard criteria. Every criterion left unset matches
everything; the criteria that are set must all hold. Results print to stdout
unless --outfile names a .csv or .json destination.`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryFlags.date, "date", "", "approach occurs on this date exactly (YYYY-MM-DD)")
	f.StringVar(&queryFlags.startDate, "start-date", "", "approach occurs on or after this date (YYYY-MM-DD)")
	f.StringVar(&queryFlags.endDate, "end-date", "", "approach occurs on or before this date (YYYY-MM-DD)")
	f.Float64Var(&queryFlags.minDistance, "min-distance", 0, "approach distance is at least this many au")
	f.Float64Var(&queryFlags.maxDistance, "max-distance", 0, "approach distance is at most this many au")
	f.Float64Var(&queryFlags.minVelocity, "min-velocity", 0, "approach velocity is at least this many km/s")
	f.Float64Var(&queryFlags.maxVelocity, "max-velocity", 0, "approach velocity is at most this many km/s")
	f.Float64Var(&queryFlags.minDiameter, "min-diameter", 0, "NEO diameter is at least this many km")
	f.Float64Var(&queryFlags.maxDiameter, "max-diameter", 0, "NEO diameter is at most this many km")
	f.BoolVar(&queryFlags.hazardous, "hazardous", false, "NEO is potentially hazardous")
	f.BoolVar(&queryFlags.notHazardous, "not-hazardous", false, "NEO is not potentially hazardous")
	f.IntVar(&queryFlags.limit, "limit", 10, "maximum number of results (0 = unlimited)")
	f.StringVar(&queryFlags.outfile, "outfile", "", "write results to this .csv or .json file instead of stdout")
	f.BoolVar(&queryFlags.stats, "stats", false, "log a metrics summary after the query")

	queryCmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
}

func runQuery(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	db, err := loadDatabase()
	if err != nil {
		return err
	}

	criteria := filter.Build(opts)
	logger.Debug("running query", "criteria", criteria.Len(), "limit", queryFlags.limit)

	results := stream.Limit(db.Query(criteria.Matches), queryFlags.limit)

	if err := emit(results, queryFlags.outfile); err != nil {
		return err
	}

	if queryFlags.stats {
		logger.Info("query metrics\n" + metrics.Summary())
	}
	return nil
}

// buildOptions maps the command's flags onto the ten optional criteria
// slots. Only flags the user actually set become constraints; defaults
// constrain nothing.
func buildOptions(cmd *cobra.Command) (filter.Options, error) {
	var opts filter.Options
	flags := cmd.Flags()

	dates := []struct {
		name string
		raw  string
		dst  **time.Time
	}{
		{"date", queryFlags.date, &opts.Date},
		{"start-date", queryFlags.startDate, &opts.StartDate},
		{"end-date", queryFlags.endDate, &opts.EndDate},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		t, err := time.ParseInLocation(dateLayout, d.raw, time.UTC)
		if err != nil {
			return opts, fmt.Errorf("invalid --%s: %w", d.name, err)
		}
		*d.dst = &t
	}

	numbers := []struct {
		name string
		val  float64
		dst  **float64
	}{
		{"min-distance", queryFlags.minDistance, &opts.MinDistance},
		{"max-distance", queryFlags.maxDistance, &opts.MaxDistance},
		{"min-velocity", queryFlags.minVelocity, &opts.MinVelocity},
		{"max-velocity", queryFlags.maxVelocity, &opts.MaxVelocity},
		{"min-diameter", queryFlags.minDiameter, &opts.MinDiameter},
		{"max-diameter", queryFlags.maxDiameter, &opts.MaxDiameter},
	}
	for _, n := range numbers {
		if flags.Changed(n.name) {
			v := n.val
			*n.dst = &v
		}
	}

	if flags.Changed("hazardous") {
		v := queryFlags.hazardous
		opts.Hazardous = &v
	} else if flags.Changed("not-hazardous") {
		v := !queryFlags.notHazardous
		opts.Hazardous = &v
	}

	return opts, nil
}

// emit serializes results to the outfile by extension, or prints them as
// human-readable lines when no outfile is given.
func emit(results iter.Seq[*neo.CloseApproach], outfile string) error {
	if outfile == "" {
		n := 0
		for ca := range results {
			fmt.Println(ca)
			n++
		}
		if n == 0 {
			fmt.Println("No matching close approaches.")
		}
		return nil
	}

	write := output.WriteCSV
	switch strings.ToLower(filepath.Ext(outfile)) {
	case ".csv":
	case ".json":
		write = output.WriteJSON
	default:
		return fmt.Errorf("unsupported output extension %q (want .csv or .json)", filepath.Ext(outfile))
	}

	f, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
