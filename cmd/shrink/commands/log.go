package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/ui/output"
)

func (c *CLI) newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Replay the output of the last ProGuard run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := c.app.LastRun()
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			if run == nil {
				icon := out.String(output.Circle).Foreground(out.Color(output.Slate)).String()
				_, _ = fmt.Fprintf(out, "%s no ProGuard run recorded yet\n", icon)
				return nil
			}

			name := out.String(run.Name).Bold().String()
			switch {
			case run.Canceled:
				icon := out.String(output.Cross).Foreground(out.Color(output.Red)).String()
				_, _ = fmt.Fprintf(out, "%s %s was interrupted\n", icon, name)
			case run.Failed():
				icon := out.String(output.Cross).Foreground(out.Color(output.Red)).String()
				_, _ = fmt.Fprintf(out, "%s %s failed after %s: %s\n", icon, name, run.Duration().Round(time.Millisecond), run.Error)
			case !run.Finished():
				icon := out.String(output.Circle).Foreground(out.Color(output.Slate)).String()
				_, _ = fmt.Fprintf(out, "%s %s did not finish\n", icon, name)
			default:
				icon := out.String(output.Check).Foreground(out.Color(output.Green)).String()
				_, _ = fmt.Fprintf(out, "%s %s finished in %s\n", icon, name, run.Duration().Round(time.Millisecond))
			}

			_, _ = out.Write(run.Output)
			return nil
		},
	}
}
