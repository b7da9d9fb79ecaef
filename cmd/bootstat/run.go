package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bootstat/bootstrap"
	"github.com/katalvlaran/bootstat/dataset"
	"github.com/katalvlaran/bootstat/formula"
	"github.com/katalvlaran/bootstat/ols"
	"github.com/katalvlaran/bootstat/report"
)

var (
	runCSV         string   // input CSV path
	runFormula     string   // model formula, e.g. "y ~ x + g"
	runTrials      int      // bootstrap replication count
	runConfidence  float64  // interval level in (0,1)
	runInterval    string   // "normal" or "percentile"
	runSeed        int64    // master seed; 0 draws one from the clock
	runWorkers     int      // parallel workers; 0 means GOMAXPROCS
	runCategorical []string // columns forced categorical on ingest
	runComma       string   // CSV field delimiter
	runHist        []string // coefficients to render as PNG histograms
	runHistDir     string   // directory for histogram PNGs
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Resample, refit, and summarize one model on one CSV",
	Long: `Reads the CSV, fits the formula on the full data, then refits it on
--trials resampled copies and prints per-coefficient bootstrap standard
errors and confidence intervals.

Examples:
  bootstat run --csv data.csv --formula "y ~ x + g"
  bootstat run --csv data.csv --formula "y ~ x * g" --interval percentile
  bootstat run --csv data.csv --formula "y ~ dose" --categorical batch \
      --trials 5000 --seed 7 --hist dose --hist-dir plots/`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runCSV, "csv", "", "input CSV path (required)")
	runCmd.Flags().StringVar(&runFormula, "formula", "", `model formula, e.g. "y ~ x + g" (required)`)
	runCmd.Flags().IntVar(&runTrials, "trials", bootstrap.DefaultTrials, "bootstrap replication count")
	runCmd.Flags().Float64Var(&runConfidence, "confidence", bootstrap.DefaultConfidence, "interval level in (0,1)")
	runCmd.Flags().StringVar(&runInterval, "interval", "normal", "interval method: normal or percentile")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "master PRNG seed; 0 draws one from the clock")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "parallel trial workers; 0 means GOMAXPROCS")
	runCmd.Flags().StringSliceVar(&runCategorical, "categorical", nil, "column names to ingest as categorical (repeatable)")
	runCmd.Flags().StringVar(&runComma, "sep", ",", "CSV field delimiter")
	runCmd.Flags().StringSliceVar(&runHist, "hist", nil, "coefficient names to render as PNG histograms (repeatable)")
	runCmd.Flags().StringVar(&runHistDir, "hist-dir", ".", "directory for histogram PNGs")

	_ = runCmd.MarkFlagRequired("csv")
	_ = runCmd.MarkFlagRequired("formula")

	rootCmd.AddCommand(runCmd)
}

// runRun wires the packages together: ingest, parse, estimate, report.
func runRun(cmd *cobra.Command, _ []string) error {
	opts := bootstrap.DefaultOptions()
	opts.Trials = runTrials
	opts.Confidence = runConfidence
	opts.Seed = runSeed
	opts.Workers = runWorkers
	opts.KeepDraws = len(runHist) > 0

	switch runInterval {
	case "normal":
		opts.Interval = bootstrap.NormalApprox
	case "percentile":
		opts.Interval = bootstrap.Percentile
	default:
		return fmt.Errorf("unknown --interval %q (want normal or percentile)", runInterval)
	}

	if len(runComma) != 1 {
		return fmt.Errorf("--sep must be a single character, got %q", runComma)
	}

	f, err := os.Open(runCSV)
	if err != nil {
		return err
	}
	defer f.Close()

	csvOpts := dataset.DefaultCSVOptions()
	csvOpts.Comma = rune(runComma[0])
	csvOpts.Categorical = runCategorical

	ds, err := dataset.ReadCSV(f, csvOpts)
	if err != nil {
		return err
	}
	slog.Info("dataset loaded", "path", runCSV, "rows", ds.NumRows(), "cols", ds.NumCols())

	spec, err := formula.Parse(runFormula)
	if err != nil {
		return err
	}

	est, err := bootstrap.New(ols.OLS{}, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	sum, err := est.Run(cmd.Context(), ds, spec)
	if err != nil {
		return err
	}
	slog.Info("bootstrap finished",
		"trials", sum.CompletedTrials,
		"failed", sum.FailedTrials,
		"seed", sum.Seed,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if err = report.Table(os.Stdout, sum); err != nil {
		return err
	}

	for _, coef := range runHist {
		path := histPath(runHistDir, coef)
		if err = report.Histogram(path, sum, coef); err != nil {
			return err
		}
		slog.Info("histogram written", "coefficient", coef, "path", path)
	}
	return nil
}

// histPath maps a coefficient name to a PNG path, replacing the
// characters coefficient names legitimately carry ((Intercept), g[b],
// x:g[b]) that are awkward in filenames.
func histPath(dir, coef string) string {
	r := strings.NewReplacer("(", "", ")", "", "[", "_", "]", "", ":", "_")
	return filepath.Join(dir, r.Replace(coef)+".png")
}
