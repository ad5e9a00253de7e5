// Package cmd implements the ideaboard command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ideaboard/config"
	"ideaboard/storage"
)

var (
	cfgFile string
	verbose bool

	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ideaboard",
	Short: "Terminal mind-mapping boards",
	Long: `ideaboard keeps freeform idea boards: nodes placed on an infinite
canvas, connected by edges, edited interactively with full undo/redo.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init(cfgFile)
		cfg = config.Load()
		log = newLogger(verbose)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/ideaboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds a stderr logger. Errors only by default so the TUI
// screen stays clean; --verbose opens it up.
func newLogger(verbose bool) *zap.Logger {
	c := zap.NewDevelopmentConfig()
	c.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	if verbose {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := c.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openBoards() (*storage.Boards, error) {
	return storage.Open(cfg.DatabasePath())
}
