package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <fixture...>",
	Short: "Print fixture content",
	Long: `Print the concatenated content of one or more fixtures, resolved
against the configured fixtures path.

Examples:
  domspec read list.html
  domspec read header.html list.html --path test/html`,
	Args: cobra.MinimumNArgs(1),
	RunE: readCommand,
}

func readCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	content, err := newLoader(cfg, logger).Read(args...)
	if err != nil {
		return exitWith(ExitFixtureFailure, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
