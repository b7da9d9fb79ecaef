package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/bootstat/bootstrap"
)

// Table writes the per-coefficient summary as an aligned console table:
// name, baseline estimate, bootstrap standard error, interval bounds, and
// the count of contributing trials. Warnings follow the table, one line
// each, so they cannot be overlooked.
func Table(w io.Writer, s *bootstrap.Summary) error {
	if s == nil {
		return ErrNilSummary
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "coefficient\testimate\tstd.err\tlower\tupper\ttrials\t"); err != nil {
		return err
	}
	for _, c := range s.Sorted() {
		if _, err := fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\t%.6g\t%d\t\n",
			c.Name, c.Estimate, c.StdErr, c.Lower, c.Upper, c.Trials); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%.1f%% %s intervals, %d/%d trials completed, %d failed (seed %d)\n",
		100*s.Confidence, s.Interval, s.CompletedTrials, s.RequestedTrials, s.FailedTrials, s.Seed); err != nil {
		return err
	}
	for _, warn := range s.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warn.Message); err != nil {
			return err
		}
	}
	return nil
}
