package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/trendlab/internal/report"
)

// FitOptions holds flags for the fit command.
type FitOptions struct {
	*RootOptions
	PlotCSV string
}

// NewFitCommand creates the fit command.
func NewFitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a trend line over all samples and record its metrics",
		Long: `Fit a least-squares line of sample value against insertion order,
score it (R², MAE, MSE), and append the score to the fit history.

The observed and predicted series can be written as CSV for plotting.

Examples:
  trendlab fit
  trendlab fit --plot-csv series.csv
  trendlab fit --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.PlotCSV, "plot-csv", "", "write observed/predicted series to this CSV file")

	return cmd
}

func runFit(opts *FitOptions, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.pipeline.RunFitCycle(cmd.Context())
	if err != nil {
		return s.out.fail(err)
	}

	if opts.PlotCSV != "" {
		if err := writePlotCSV(opts.PlotCSV, res.Observed, res.Predicted); err != nil {
			return WrapExitError(ExitCommandError, "failed to write plot csv", err)
		}
		s.out.VerboseLog("series written to %s", opts.PlotCSV)
	}

	if s.out.JSON() {
		return s.out.Success(res)
	}

	s.out.VerboseLog("slope=%g intercept=%g samples=%d", res.Model.Slope, res.Model.Intercept, len(res.Observed))
	return report.Metrics(s.out.Writer, &res.Metrics, s.cfg.Decimals)
}

func writePlotCSV(path string, observed, predicted []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := report.WriteSeriesCSV(f, observed, predicted); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
