package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newBootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap <script.cpp>",
		Short: "Rebuild the orchestrator from its script source and restart under the fresh binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.SelfRebuild(cmd.Context(), args[0], os.Args)
		},
	}
}
