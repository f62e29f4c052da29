package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autotool/autotool/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	path := cfgPath
	if path == "" {
		path = config.ConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config already exists at %s\n", path)
		return nil
	}

	cfg := config.DefaultConfig()
	if err := config.Save(&cfg, path); err != nil {
		return err
	}
	fmt.Printf("✓ Created config at %s\n", path)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Enable buckets and adjust pattern lists in the config")
	fmt.Println("  2. Check them: autotool rules")
	fmt.Println("  3. Try a name: autotool classify get_thing")
	return nil
}
