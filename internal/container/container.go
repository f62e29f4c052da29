// Package container wires the autotool CLI services using go.uber.org/dig.
package container

import (
	"go.uber.org/dig"

	"github.com/autotool/autotool/internal/config"
	"github.com/autotool/autotool/internal/crud"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg      *config.Config
	controls *crud.Controls
}

func (c *Container) Config() *config.Config   { return c.cfg }
func (c *Container) Controls() *crud.Controls { return c.controls }

// New builds and wires the services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newControls); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(cfg *config.Config, controls *crud.Controls) {
		result = &Container{cfg: cfg, controls: controls}
	})
	return result, err
}

func newControls(cfg *config.Config) *crud.Controls {
	controls := cfg.Controls()
	// Compile eagerly so configuration problems surface before first use.
	controls.Compile()
	return controls
}
