package flavord

import (
	"errors"

	"github.com/sinotca/mdbook-sinotca-flavord/internal/preprocessor"
	"github.com/spf13/cobra"
)

// errUnsupported makes Execute exit non-zero without printing anything,
// which is how the host learns a renderer is not supported.
var errUnsupported = errors.New("renderer not supported")

func init() {
	cmd := &cobra.Command{
		Use:   "supports <renderer>",
		Short: "Check whether a renderer is supported by this preprocessor",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !preprocessor.New(preprocessor.Options{}).SupportsRenderer(args[0]) {
				return errUnsupported
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
