package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autotool/autotool/internal/config"
	"github.com/autotool/autotool/internal/container"
	"github.com/autotool/autotool/internal/crud"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the effective CRUD rule sets and how each pattern compiled",
	RunE:  runRules,
}

func runRules(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c, err := container.New(cfg)
	if err != nil {
		return err
	}

	controls := c.Controls()
	for _, b := range crud.Buckets {
		rs := controls.RuleSet(b)
		state := "disabled"
		if rs.Enabled {
			state = "enabled"
		}
		fmt.Printf("%s (%s)\n", b, state)
		for _, info := range controls.Inspect(b) {
			note := ""
			if info.Degraded {
				note = "  (regex did not compile)"
			}
			fmt.Printf("  %-30s %s%s\n", info.Raw, info.Kind, note)
		}
	}
	return nil
}
