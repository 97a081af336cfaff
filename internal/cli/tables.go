package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/trendlab/internal/report"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "tables",
		Short:         "List the tables in the database schema",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.pipeline.SchemaSummary(cmd.Context())
			if err != nil {
				return s.out.fail(err)
			}

			if s.out.JSON() {
				return s.out.Success(map[string][]string{"tables": names})
			}
			return report.Tables(s.out.Writer, names)
		},
	}
}
