// Package autotool discovers the CRUD-shaped callable members of an
// arbitrary client at construction time and wraps each approved member as an
// independently invokable tool. Discovery runs once; the resulting operation
// set is read-only for the lifetime of the wrapper.
package autotool

import (
	"log/slog"
	"strings"

	"github.com/autotool/autotool/internal/crud"
	"github.com/autotool/autotool/internal/schema"
)

// Config carries the wrapper's construction inputs.
type Config struct {
	// Client is the wrapped SDK-like object, already adapted to the Client
	// contract (see Reflect). Required.
	Client Client
	// Controls selects which member names become operations. Nil selects
	// crud.DefaultControls (read bucket only).
	Controls *crud.Controls
}

// Wrapper holds the finished operation set.
type Wrapper struct {
	client     Client
	controls   *crud.Controls
	operations []*AutoTool
}

// New enumerates the client's members, classifies each name against the CRUD
// controls, and builds one operation per approved name. Member order is
// preserved; a name approved under several buckets still yields a single
// operation (first bucket in create→read→update→delete order wins).
//
// Members with a leading underscore are never wrapped, whatever the controls
// say. A nil client or a client with no members fails with
// *ConfigurationError.
func New(cfg Config) (*Wrapper, error) {
	if cfg.Client == nil {
		return nil, &ConfigurationError{Reason: "client is nil"}
	}
	controls := cfg.Controls
	if controls == nil {
		controls = crud.DefaultControls()
	}

	members := cfg.Client.Members()
	if len(members) == 0 {
		return nil, &ConfigurationError{Reason: "client exposes no enumerable callable members"}
	}

	w := &Wrapper{client: cfg.Client, controls: controls}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if m.Name == "" || strings.HasPrefix(m.Name, "_") || m.Call == nil {
			continue
		}
		if seen[m.Name] {
			continue
		}
		bucket, ok := controls.ApprovedAny(m.Name)
		if !ok {
			continue
		}
		seen[m.Name] = true
		slog.Debug("discovered operation", "operation", m.Name, "bucket", string(bucket))
		w.operations = append(w.operations, NewTool(cfg.Client, m.Name, m.Doc))
	}
	return w, nil
}

// Operations returns the discovered operations in enumeration order. The
// returned slice is a copy; the wrapper's own set never changes.
func (w *Wrapper) Operations() []*AutoTool {
	return append([]*AutoTool(nil), w.operations...)
}

// Tools returns the operation set as the agent-facing Tool contract.
func (w *Wrapper) Tools() []schema.Tool {
	tools := make([]schema.Tool, len(w.operations))
	for i, op := range w.operations {
		tools[i] = op
	}
	return tools
}
