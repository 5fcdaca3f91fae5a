package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/ui/output"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last ProGuard run of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := c.GetConfigPath()
			m, err := c.app.Effective(configPath)
			if err != nil {
				return err
			}

			record, err := c.app.Status(configPath)
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			name := out.String(m.Project.Name).Bold().String()

			if record == nil {
				icon := out.String(output.Circle).Foreground(out.Color(output.Slate)).String()
				_, _ = fmt.Fprintf(out, "%s %s has not been run yet\n", icon, name)
				return nil
			}

			icon := out.String(output.Check).Foreground(out.Color(output.Green)).String()
			_, _ = fmt.Fprintf(out, "%s %s\n", icon, name)
			_, _ = fmt.Fprintf(out, "  %-10s %s\n", "last run", record.Timestamp.UTC().Format(time.RFC3339))
			_, _ = fmt.Fprintf(out, "  %-10s %s\n", "input", record.InputHash)
			_, _ = fmt.Fprintf(out, "  %-10s %s\n", "output", record.OutputHash)
			_, _ = fmt.Fprintf(out, "  %-10s %s\n", "args", strings.Join(record.Args, " "))
			return nil
		},
	}
}
