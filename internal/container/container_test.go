package container

import (
	"testing"

	"github.com/autotool/autotool/internal/config"
	"github.com/autotool/autotool/internal/crud"
)

func TestNew_WiresControlsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Crud.Create.Enabled = true

	c, err := New(&cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Config() != &cfg {
		t.Error("container should hold the supplied config")
	}
	if !c.Controls().Approved("create_thing", crud.BucketCreate) {
		t.Error("controls not built from the supplied config")
	}
	if c.Controls().Approved("delete_thing", crud.BucketDelete) {
		t.Error("delete should stay disabled")
	}
}
