package cli

import (
	"fmt"
	"os"

	"github.com/Fuabioo/errdemo/internal/core"
	"github.com/Fuabioo/errdemo/internal/diag"
	"github.com/spf13/cobra"
)

// rootCmd runs the demonstration sequence. It takes no flags or arguments.
var rootCmd = &cobra.Command{
	Use:   "errdemo",
	Short: "Demonstrates recoverable, optional and unrecoverable errors",
	Long: `errdemo opens hello.txt in the working directory a few different ways,
each showing a different way of reacting to failure.

A missing hello.txt is treated as unrecoverable and crashes the program.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command. On failure it prints the error and exits
// with getExitCode; on success it returns.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err, core.ColorAllowed())
		os.Exit(getExitCode(err))
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := core.LoadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := diag.NewLogger(cmd.ErrOrStderr(), diag.Options{
		Level:     cfg.Log.Level,
		File:      cfg.Log.File,
		MaxSizeMB: cfg.Log.MaxSizeMB,
		Color:     cfg.Color,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	if err := core.Run(logger); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), cfg.Color)
	return nil
}
