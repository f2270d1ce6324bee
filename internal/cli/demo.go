package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hoard/internal/demo"
	"github.com/mesh-intelligence/hoard/pkg/types"
)

func newDemoCmd(a *app) *cobra.Command {
	var sections []string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the walkthrough sections",
		Long: "Run the sequence, map, and text walkthroughs in order, or only the\n" +
			"sections named with --section or in config.yaml.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := sections
			if len(run) == 0 {
				run = a.cfg.Sections
			}
			return a.run(cmd, run)
		},
	}
	cmd.Flags().StringSliceVar(&sections, "section", nil, "section to run: sequence, map, text (repeatable)")
	return cmd
}

func newSectionCmd(a *app, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, []string{name})
		},
	}
}

// run executes sections and classifies the failure for the exit code.
func (a *app) run(cmd *cobra.Command, sections []string) error {
	r := demo.New(cmd.OutOrStdout(), a.log, a.cfg)
	if err := r.Run(sections); err != nil {
		if errors.Is(err, types.ErrSectionUnknown) || errors.Is(err, types.ErrHasherUnknown) {
			return userError(err)
		}
		return sysError(fmt.Errorf("demo: %w", err))
	}
	return nil
}
