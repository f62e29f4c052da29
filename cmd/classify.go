package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autotool/autotool/internal/config"
	"github.com/autotool/autotool/internal/container"
)

var classifyCmd = &cobra.Command{
	Use:   "classify NAME...",
	Short: "Classify candidate member names against the configured rule sets",
	Long: `Classify prints the first bucket (create, read, update, delete) that
approves each name, or "-" when every bucket rejects it. Useful for checking
what a wrapper would discover before pointing it at a real client.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(_ *cobra.Command, names []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c, err := container.New(cfg)
	if err != nil {
		return err
	}

	controls := c.Controls()
	for _, name := range names {
		if bucket, ok := controls.ApprovedAny(name); ok {
			fmt.Printf("%-30s %s\n", name, bucket)
			continue
		}
		fmt.Printf("%-30s -\n", name)
	}
	return nil
}
