// Package cmd implements the autotool CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// cfgPath is the --config override; empty means config.ConfigPath().
var cfgPath string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "autotool",
	Short: "autotool — expose an SDK client's CRUD methods as agent tools",
	Long: `autotool discovers the public callable members of an SDK-like client,
classifies them by CRUD role using configurable regex and glob rules, and
wraps the approved ones as uniformly invokable tools.`,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.autotool/config.yaml)")

	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(initCmd)
}
