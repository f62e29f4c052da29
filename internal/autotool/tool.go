package autotool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
)

// defaultParameters is the schema advertised for every discovered operation.
// Argument names and types belong to the wrapped SDK, so the schema stays
// permissive.
var defaultParameters = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":true}`)

// AutoTool is one discovered operation: a named member of the wrapped client
// exposed through the uniform tool call interface. It holds a non-owning
// reference to the client and is immutable after creation.
type AutoTool struct {
	client      Client
	name        string
	description string
}

// NewTool wraps the named member of client as an invokable tool. The member
// is resolved at call time, not here; invoking a tool whose member has
// disappeared returns the "Invalid function name:" diagnostic string.
func NewTool(client Client, name, description string) *AutoTool {
	return &AutoTool{client: client, name: name, description: description}
}

func (t *AutoTool) Name() string                { return t.name }
func (t *AutoTool) Description() string         { return t.description }
func (t *AutoTool) Parameters() json.RawMessage { return defaultParameters }

// Execute satisfies schema.Tool. The params map is passed through as the
// call's named arguments.
func (t *AutoTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	return t.Run(ctx, params, nil, nil)
}

// Run is the full invocation entry point. input may be nil, a JSON object
// string, or a map; anything else decodes to an empty argument set
// (permissive decode). kwargs are merged over the decoded input, positional
// args are passed through untouched.
//
// The returned error is only ever a failure from inside the wrapped member;
// a missing member is reported as a diagnostic string with a nil error.
func (t *AutoTool) Run(ctx context.Context, input any, args []any, kwargs map[string]any) (string, error) {
	id := uuid.NewString()

	params := decodeInput(input)
	for k, v := range kwargs {
		params[k] = v
	}

	member, ok := t.lookup()
	if !ok {
		slog.Warn("operation no longer present on client", "invocation", id, "operation", t.name)
		return "Invalid function name: " + t.name, nil
	}

	slog.Debug("invoking operation",
		"invocation", id, "operation", t.name, "positional", len(args), "named", len(params))

	result, err := member.Call(ctx, args, params)
	if err != nil {
		return "", err
	}
	return encodeResult(normalizeResult(result)), nil
}

// lookup resolves the member by name on the client at call time.
func (t *AutoTool) lookup() (Member, bool) {
	for _, m := range t.client.Members() {
		if m.Name == t.name {
			return m, true
		}
	}
	return Member{}, false
}

// decodeInput applies the permissive decode policy: any input that does not
// yield a JSON object becomes an empty argument set. The returned map is
// always a fresh copy so merging kwargs never mutates caller state.
func decodeInput(input any) map[string]any {
	switch v := input.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(v), &m); err != nil || m == nil {
			return map[string]any{}
		}
		return m
	default:
		return map[string]any{}
	}
}

// normalizeResult prepares a call result for serialization. Maps pass
// through. Lazy sequences that are not text-like — channels and
// iter.Seq-shaped functions — are fully drained into a slice; draining
// blocks until the sequence ends, with no bound on time or memory.
// Everything else passes through unchanged.
func normalizeResult(result any) any {
	if result == nil {
		return nil
	}
	switch result.(type) {
	case string, []byte:
		return result
	}

	rv := reflect.ValueOf(result)
	switch rv.Kind() {
	case reflect.Chan:
		if rv.Type().ChanDir() == reflect.SendDir {
			return result
		}
		var out []any
		for {
			v, ok := rv.Recv()
			if !ok {
				break
			}
			out = append(out, v.Interface())
		}
		return out
	case reflect.Func:
		if out, ok := drainSeq(rv); ok {
			return out
		}
	}
	return result
}

// drainSeq drains a func(yield func(T) bool) push iterator (iter.Seq shape)
// into a slice. Returns false when fn is not seq-shaped.
func drainSeq(fn reflect.Value) ([]any, bool) {
	ft := fn.Type()
	if ft.NumIn() != 1 || ft.NumOut() != 0 {
		return nil, false
	}
	yt := ft.In(0)
	if yt.Kind() != reflect.Func || yt.NumIn() != 1 || yt.NumOut() != 1 || yt.Out(0).Kind() != reflect.Bool {
		return nil, false
	}

	out := []any{}
	yield := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
		out = append(out, args[0].Interface())
		return []reflect.Value{reflect.ValueOf(true)}
	})
	fn.Call([]reflect.Value{yield})
	return out, true
}

// encodeResult serializes v as JSON, stringifying any value the encoder does
// not support.
func encodeResult(v any) string {
	b, err := json.Marshal(sanitizeJSON(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// sanitizeJSON recursively maps v to a JSON-encodable shape. Unsupported
// leaves are rendered through their string form, the moral equivalent of
// json.dumps(default=str).
func sanitizeJSON(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case json.RawMessage:
		return t
	case []byte:
		return string(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return sanitizeJSON(rv.Elem().Interface())
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = sanitizeJSON(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, sanitizeJSON(rv.Index(i).Interface()))
		}
		return out
	default:
		if _, err := json.Marshal(v); err != nil {
			return fmt.Sprint(v)
		}
		return v
	}
}
