// bootstat is the command-line front end for the bootstrap estimator:
// it reads a CSV dataset, refits a linear model on resampled copies, and
// prints per-coefficient standard errors and confidence intervals.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bootstat",
	Short: "Bootstrap standard errors and confidence intervals for linear models",
	Long: `bootstat estimates the sampling distribution of linear-model
coefficients by resampling rows with replacement and refitting.

Example:
  bootstat run --csv data.csv --formula "y ~ x + g" --trials 1000 --seed 7`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		slog.Error("bootstat failed", "err", err)
		os.Exit(1)
	}
}
