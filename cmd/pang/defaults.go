package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pang/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Redirect it to
~/.pang/config.yaml or ./configs/pang.yaml and edit to taste.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
