package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xab-mack/quorum/internal/config"
)

func newInitCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented " + config.FileName + " in the target directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = "."
			}
			path := filepath.Join(dir, config.FileName)
			return os.WriteFile(path, []byte(config.DefaultYAML), 0o644)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write the config file to")
	return cmd
}
