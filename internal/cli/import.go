package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import samples from a CSV file",
		Long: `Import samples from a CSV file with a "value,note" header.
The whole file is rejected if any value is malformed. Use "-" to read stdin.

Example:
  trendlab import samples.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open import file", err)
		}
		defer f.Close()
		in = f
	}

	s, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.pipeline.ImportCSV(cmd.Context(), in)
	if err != nil {
		return s.out.fail(err)
	}

	if s.out.JSON() {
		return s.out.Success(map[string]int{"inserted": n})
	}
	fmt.Fprintf(s.out.Writer, "Imported %d samples\n", n)
	return nil
}
