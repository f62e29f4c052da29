package autotool

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Member is one callable exposed by a wrapped client: its name, optional
// documentation, and a uniform call entry point taking positional values and
// a named-argument set.
type Member struct {
	Name string
	Doc  string
	Call func(ctx context.Context, args []any, kwargs map[string]any) (any, error)
}

// Client is the capability contract the operation builder depends on. A
// client enumerates its callable members; it does not need to be a Go struct.
// Reflect adapts an arbitrary value to this contract.
type Client interface {
	Members() []Member
}

// Documenter is optionally implemented by reflected clients to supply
// documentation for their members. The name passed is the snake_case member
// name as it appears in the operation set.
type Documenter interface {
	MemberDoc(name string) string
}

// Reflect adapts an arbitrary value to the Client contract using runtime
// reflection. Exported methods become members under snake_case names
// (GetThing → get_thing) so the usual SDK naming conventions line up with
// the default CRUD patterns.
//
// Argument binding: a leading context.Context parameter receives the call
// context; positional values bind left-to-right to the remaining parameters;
// a trailing struct, *struct, or map[string]any parameter not claimed by a
// positional value receives the named arguments via a JSON round trip. A
// trailing error result is split off and returned as the call error.
func Reflect(target any) Client {
	return &reflectClient{target: target}
}

type reflectClient struct {
	target any
}

func (c *reflectClient) Members() []Member {
	rv := reflect.ValueOf(c.target)
	if !rv.IsValid() {
		return nil
	}
	docs, _ := c.target.(Documenter)

	rt := rv.Type()
	members := make([]Member, 0, rt.NumMethod())
	for i := 0; i < rt.NumMethod(); i++ {
		name := toSnake(rt.Method(i).Name)
		fn := rv.Method(i)

		doc := ""
		if docs != nil {
			doc = docs.MemberDoc(name)
		}

		members = append(members, Member{
			Name: name,
			Doc:  doc,
			Call: func(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
				return call(ctx, fn, args, kwargs)
			},
		})
	}
	return members
}

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// call binds args and kwargs to fn's parameter list and invokes it.
func call(ctx context.Context, fn reflect.Value, args []any, kwargs map[string]any) (any, error) {
	ft := fn.Type()
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, ft.NumIn())
	p := 0
	if fixed > 0 && ft.In(0) == ctxType {
		in = append(in, reflect.ValueOf(ctx))
		p = 1
	}

	pos := args
	for ; p < fixed; p++ {
		pt := ft.In(p)
		if p == fixed-1 && !ft.IsVariadic() && len(pos) == 0 && bindsKwargs(pt) {
			v, err := convertTo(kwargs, pt)
			if err != nil {
				return nil, fmt.Errorf("bind named arguments to %s: %w", pt, err)
			}
			in = append(in, v)
			continue
		}
		if len(pos) > 0 {
			v, err := convertTo(pos[0], pt)
			if err != nil {
				return nil, fmt.Errorf("bind positional argument to %s: %w", pt, err)
			}
			pos = pos[1:]
			in = append(in, v)
			continue
		}
		in = append(in, reflect.Zero(pt))
	}

	if ft.IsVariadic() {
		et := ft.In(ft.NumIn() - 1).Elem()
		for _, a := range pos {
			v, err := convertTo(a, et)
			if err != nil {
				return nil, fmt.Errorf("bind variadic argument to %s: %w", et, err)
			}
			in = append(in, v)
		}
	}

	return splitResults(fn.Call(in))
}

// bindsKwargs reports whether a parameter type can receive the named-argument set.
func bindsKwargs(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Struct
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	default:
		return false
	}
}

// convertTo coerces v to type t, falling back to a JSON round trip for
// numeric widening and map→struct binding.
func convertTo(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(t)
	if err := json.Unmarshal(b, out.Interface()); err != nil {
		return reflect.Value{}, err
	}
	return out.Elem(), nil
}

// splitResults separates a trailing error return from the value results.
func splitResults(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, err
	}
}

// toSnake converts an exported Go method name to snake_case. Runs of upper
// case are kept together, so GetID becomes get_id and HTTPServer http_server.
func toSnake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
