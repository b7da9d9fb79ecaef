package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/bootstat/bootstrap"
)

// histogramBins is the fixed bin count; plenty for B in the hundreds to
// thousands of draws.
const histogramBins = 30

// Histogram renders the bootstrap distribution of one coefficient to a
// PNG file, with the baseline estimate and interval bounds readable from
// the title. Requires the run to have retained draws (Options.KeepDraws).
//
// Errors:
//   - ErrNilSummary, ErrUnknownCoefficient, ErrNoDraws.
//   - plotting and file errors are passed through wrapped.
func Histogram(path string, s *bootstrap.Summary, coef string) error {
	if s == nil {
		return ErrNilSummary
	}
	c, ok := s.Coefficient(coef)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCoefficient, coef)
	}
	if len(c.Draws) == 0 {
		return fmt.Errorf("%w: %q", ErrNoDraws, coef)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s — estimate %.4g, %.1f%% CI [%.4g, %.4g]",
		c.Name, c.Estimate, 100*s.Confidence, c.Lower, c.Upper)
	p.X.Label.Text = c.Name
	p.Y.Label.Text = "trials"

	vals := make(plotter.Values, len(c.Draws))
	copy(vals, c.Draws)
	h, err := plotter.NewHist(vals, histogramBins)
	if err != nil {
		return fmt.Errorf("report: building histogram: %w", err)
	}
	p.Add(h)

	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: saving %s: %w", path, err)
	}
	return nil
}
