package cli

import (
	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Values string
	Note   string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add comma-separated samples with a note",
		Long: `Add one sample per comma-separated number. Every sample in the batch
gets the same note. If any number is malformed nothing is stored.

Example:
  trendlab add --values "10, 12.5, 9" --note "week 1"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Values, "values", "", "comma-separated numbers")
	cmd.Flags().StringVar(&opts.Note, "note", "", "free-text note attached to each sample")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	s, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.pipeline.SubmitInput(cmd.Context(), opts.Values, opts.Note)
	if err != nil {
		return s.out.fail(err)
	}

	if s.out.JSON() && res.Inserted > 0 {
		return s.out.Success(res)
	}
	return s.out.Notice(res.Notice)
}
