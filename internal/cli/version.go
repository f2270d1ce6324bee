package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hoard/pkg/hoard"
)

const modulePath = "github.com/mesh-intelligence/hoard"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hoard version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "hoard v%s\nmodule: %s\n", hoard.Version, modulePath)
			return nil
		},
	}
}
