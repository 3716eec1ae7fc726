package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/domspec/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize domspec in the current directory",
	Long: `Initialize domspec in the current directory.

This creates:
  - .domspec.yaml                - Configuration file with default settings
  - spec/fixtures/example.html   - Example fixture

Examples:
  domspec init
  domspec init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

const exampleFixture = `<ul id="menu" class="nav">
  <li class="active"><a href="#home">Home</a></li>
  <li><a href="#about">About</a></li>
</ul>
<form id="search">
  <input type="text" name="q" value="">
  <input type="checkbox" name="exact" checked>
  <button type="submit">Search</button>
</form>
`

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	configFile := filepath.Join(cwd, ".domspec.yaml")
	exampleFile := filepath.Join(cwd, filepath.FromSlash(cfg.FixturesPath), "example.html")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return exitWith(ExitUsageError, fmt.Errorf("file already exists: %s (use --force to overwrite)", f))
			}
		}
	}

	if err := cfg.SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	if err := os.MkdirAll(filepath.Dir(exampleFile), 0755); err != nil {
		return fmt.Errorf("failed to create fixtures directory: %w", err)
	}
	if err := os.WriteFile(exampleFile, []byte(exampleFixture), 0644); err != nil {
		return fmt.Errorf("failed to create example fixture: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\ndomspec initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'domspec check' to load the example fixture.\n")

	return nil
}
