package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xab-mack/quorum/internal/config"
	"github.com/xab-mack/quorum/internal/model"
)

func newContextsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "List context types and their in-scope categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(".")
			if err != nil {
				return err
			}
			for _, t := range config.ContextTypes() {
				cats := cfg.Categories(t)
				label := strings.Join(cats, ", ")
				if t == model.ContextGeneral || len(cats) == 0 {
					label = "(all categories)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, label)
			}
			return nil
		},
	}
}
