// Package tools collects discovered operations into a named list an agent
// framework can query and extend at runtime.
package tools

import (
	"encoding/json"

	"github.com/autotool/autotool/internal/schema"
)

// ToolList holds a named set of tools. Unlike a bare map it preserves
// insertion order, so definitions are emitted in discovery order.
type ToolList struct {
	names []string
	tools map[string]schema.Tool
}

func NewToolList(ts ...schema.Tool) *ToolList {
	list := &ToolList{tools: make(map[string]schema.Tool, len(ts))}
	for _, t := range ts {
		list.Add(t)
	}
	return list
}

// Get returns the tool with the given name, or nil if not found.
func (r *ToolList) Get(name string) schema.Tool {
	return r.tools[name]
}

// Add registers a new tool, replacing any existing tool with the same name
// while keeping its original position.
func (r *ToolList) Add(t schema.Tool) schema.Tool {
	if _, exists := r.tools[t.Name()]; !exists {
		r.names = append(r.names, t.Name())
	}
	r.tools[t.Name()] = t

	return t
}

// Names returns the tool names in insertion order.
func (r *ToolList) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered tools.
func (r *ToolList) Len() int { return len(r.names) }

// Definitions returns all tool definitions in OpenAI function-calling format.
func (r *ToolList) Definitions() []map[string]any {
	list := make([]map[string]any, 0, len(r.names))
	for _, name := range r.names {
		t := r.tools[name]
		var params any
		if err := json.Unmarshal(t.Parameters(), &params); err != nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		list = append(list, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name(),
				"description": t.Description(),
				"parameters":  params,
			},
		})
	}
	return list
}
