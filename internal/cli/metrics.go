package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/trendlab/internal/report"
	"github.com/roach88/trendlab/internal/trend"
)

// NewMetricsCommand creates the metrics command.
func NewMetricsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "metrics",
		Short:         "Show the metrics of the most recent fit",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetrics(rootOpts, cmd)
		},
	}
}

func runMetrics(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	m, ok, err := s.pipeline.CurrentMetrics(cmd.Context())
	if err != nil {
		return s.out.fail(err)
	}

	var current *trend.Metrics
	if ok {
		current = &m
	}

	if s.out.JSON() {
		return s.out.Success(map[string]*trend.Metrics{"metrics": current})
	}
	return report.Metrics(s.out.Writer, current, s.cfg.Decimals)
}
