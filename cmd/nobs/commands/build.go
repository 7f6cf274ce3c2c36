package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/nobs/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Build the named targets, or every target when none are named",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			return c.app.Run(cmd.Context(), args, app.RunOptions{Jobs: jobs})
		},
	}
	cmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Maximum number of parallel compile/link processes")
	return cmd
}
