package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/trendlab/internal/report"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "history",
		Short:         "List every recorded fit, oldest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.pipeline.History(cmd.Context())
			if err != nil {
				return s.out.fail(err)
			}

			if s.out.JSON() {
				return s.out.Success(records)
			}
			report.History(s.out.Writer, records, s.cfg.Decimals)
			return nil
		},
	}
}

// NewSamplesCommand creates the samples command.
func NewSamplesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "samples",
		Short:         "List every stored sample in insertion order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			samples, err := s.pipeline.Samples(cmd.Context())
			if err != nil {
				return s.out.fail(err)
			}

			if s.out.JSON() {
				return s.out.Success(samples)
			}
			report.Samples(s.out.Writer, samples, s.cfg.Decimals)
			return nil
		},
	}
}
