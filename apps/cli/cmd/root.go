package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "domspec",
	Short: "HTML fixtures and DOM matchers for Go tests.",
	Long: `domspec loads HTML fixtures into an in-memory document, spies on
DOM events and evaluates DOM-aware matchers from Go tests.

The CLI checks that the fixtures a suite depends on can be loaded and
parsed with the same configuration the tests use.`,
	SilenceUsage: true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(ExitUsageError)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", getEnvString("DOMSPEC_CONFIG", ""), "Path to config file (env: DOMSPEC_CONFIG)")
	flags.StringVar(&pathFlag, "path", getEnvString("DOMSPEC_FIXTURES_PATH", ""), "Fixtures directory or URL (env: DOMSPEC_FIXTURES_PATH)")
	flags.CountVarP(&verboseFlag, "verbose", "v", "Verbose output (-v, -vv for more detail)")
	flags.BoolVar(&noColorFlag, "no-color", getEnvBool("DOMSPEC_NO_COLOR", false), "Disable colored output (env: DOMSPEC_NO_COLOR)")
	flags.BoolVarP(&insecureFlag, "insecure", "k", getEnvBool("DOMSPEC_INSECURE", false), "Disable SSL certificate validation (env: DOMSPEC_INSECURE)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
