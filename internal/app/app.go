package app

import (
	"github.com/spf13/cobra"

	"github.com/xab-mack/quorum/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "quorum", Short: "Consensus engine for multi-analyzer audit findings"}
	cli.AddCommands(root)
	return root
}
