// Package config defines the autotool configuration schema: the four CRUD
// rule sets that control which client members become tools.
package config

import (
	"os"
	"path/filepath"

	"github.com/autotool/autotool/internal/crud"
)

// RuleSetConfig is the file representation of one bucket's rule set.
type RuleSetConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Patterns []string `yaml:"patterns"`
}

// CrudConfig groups the four bucket rule sets.
type CrudConfig struct {
	Create RuleSetConfig `yaml:"create"`
	Read   RuleSetConfig `yaml:"read"`
	Update RuleSetConfig `yaml:"update"`
	Delete RuleSetConfig `yaml:"delete"`
}

// Config is the root configuration document.
type Config struct {
	Crud CrudConfig `yaml:"crud"`
}

// DefaultConfig mirrors crud.DefaultRuleSet for every bucket, so the file
// defaults and the in-code defaults can never drift apart.
func DefaultConfig() Config {
	return Config{Crud: CrudConfig{
		Create: defaultRuleSetConfig(crud.BucketCreate),
		Read:   defaultRuleSetConfig(crud.BucketRead),
		Update: defaultRuleSetConfig(crud.BucketUpdate),
		Delete: defaultRuleSetConfig(crud.BucketDelete),
	}}
}

func defaultRuleSetConfig(b crud.Bucket) RuleSetConfig {
	rs := crud.DefaultRuleSet(b)
	return RuleSetConfig{Enabled: rs.Enabled, Patterns: rs.Patterns}
}

// Controls builds crud.Controls from the configured rule sets.
func (c *Config) Controls() *crud.Controls {
	controls := crud.DefaultControls()
	controls.SetRuleSet(crud.BucketCreate, ruleSet(c.Crud.Create))
	controls.SetRuleSet(crud.BucketRead, ruleSet(c.Crud.Read))
	controls.SetRuleSet(crud.BucketUpdate, ruleSet(c.Crud.Update))
	controls.SetRuleSet(crud.BucketDelete, ruleSet(c.Crud.Delete))
	return controls
}

func ruleSet(rc RuleSetConfig) crud.RuleSet {
	return crud.RuleSet{Enabled: rc.Enabled, Patterns: rc.Patterns}
}

// ConfigPath returns the default configuration file path: ~/.autotool/config.yaml.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".autotool/config.yaml"
	}
	return filepath.Join(home, ".autotool", "config.yaml")
}
