package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "measures-generator",
	Short:         "Validate and resolve units-of-measure annotations",
	Long:          `measures-generator reads @Unit, @Scalar, @Vector and @VectorGroup annotations from Go packages, validates them and resolves inheritance between quantities`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if code, ok := exitCode(err); ok {
			os.Exit(code)
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	registerPersistentFlags(rootCmd)
}

func registerPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to measures.toml (default: searched upward from the working directory)")
	flags.Int("jobs", 0, "max parallel workers per stage (0=from config, then GOMAXPROCS)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.Int("max-diagnostics", -1, "maximum number of diagnostics to show (0=all, -1=from config)")
}
