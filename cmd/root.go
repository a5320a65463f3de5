package cmd

import (
	"os"

	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "swift-bridge",
		Short: "Generate Swift bindings for Rust functions",
		Long: `Render the Swift side of functions that cross a Rust / Swift FFI boundary:
declarations, call forwarding and return types`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := core.DefaultLogConfig()
			cfg.Level = logLevel
			cfg.Format = logFormat
			return core.InitLogger(cfg)
		},
	}

	logLevel  string
	logFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

// Execute runs the root command and exits non zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
