package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var skip bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run ProGuard on the project's artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: c.GetConfigPath(),
				Skip:       skip,
			})
		},
	}

	cmd.Flags().BoolVar(&skip, "skip", false, "Skip the ProGuard step")
	return cmd
}
