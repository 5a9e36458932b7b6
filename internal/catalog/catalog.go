// Package catalog is the source of truth for the set of supported automation
// commands. Each entry names the daemon-side function, its positional
// parameter list, and the response type the daemon script produces for it.
// Parameter lists compile to JSON Schemas at load time; dispatch-time
// validation happens against the resolved schema before any process
// interaction.
package catalog

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
)

// ParamKind is the declared type of one positional parameter.
type ParamKind string

const (
	// KindString accepts any string value.
	KindString ParamKind = "string"
	// KindInt accepts a Go int, formatted base-10 on the wire.
	KindInt ParamKind = "int"
	// KindBool accepts a Go bool, formatted as 1 or 0 on the wire.
	KindBool ParamKind = "bool"
	// KindFloat accepts a Go float64, formatted with minimal digits.
	KindFloat ParamKind = "float"
)

// schemaType maps a parameter kind to its JSON Schema type name.
func (k ParamKind) schemaType() string {
	switch k {
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindFloat:
		return "number"
	default:
		return "string"
	}
}

// Param declares one positional parameter of a command.
type Param struct {
	Name string
	Kind ParamKind

	// Optional parameters are dropped from the wire when they format to an
	// empty string and nothing non-empty follows. The daemon script appends
	// these only when set, so emitting a trailing empty field would change
	// the request's spelling.
	Optional bool
}

// Spec is the canonical description of one automation command.
type Spec struct {
	// Function is the daemon-side function name as spelled on the wire.
	Function string
	// Params is the ordered positional parameter list.
	Params []Param
	// Result is the type order mark the daemon produces on success.
	Result string

	resolved *jsonschema.Resolved
}

// compile builds and resolves the argument schema for this command.
func (s *Spec) compile() error {
	properties := make(map[string]*jsonschema.Schema, len(s.Params))
	required := make([]string, 0, len(s.Params))

	for _, p := range s.Params {
		properties[p.Name] = &jsonschema.Schema{Type: p.Kind.schemaType()}
		required = append(required, p.Name)
	}

	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("compile argument schema for %s: %w", s.Function, err)
	}

	s.resolved = resolved

	return nil
}

// Validate checks the argument values against the command's parameter list.
// It verifies arity positionally, then types via the resolved JSON Schema.
func (s *Spec) Validate(args []any) error {
	if len(args) != len(s.Params) {
		return fmt.Errorf("expected %d arguments, got %d", len(s.Params), len(args))
	}

	instance := make(map[string]any, len(args))
	for i, arg := range args {
		instance[s.Params[i].Name] = arg
	}

	if err := s.resolved.Validate(instance); err != nil {
		return err
	}

	return nil
}

// Format renders validated argument values as wire strings in declaration
// order, trimming trailing empty optional parameters. Callers must Validate
// first; a type mismatch here is a programmer error and is reported, not
// silently coerced.
func (s *Spec) Format(args []any) ([]string, error) {
	out := make([]string, len(args))

	for i, arg := range args {
		p := s.Params[i]

		switch p.Kind {
		case KindString:
			v, ok := arg.(string)
			if !ok {
				return nil, formatErr(s, p, arg)
			}

			out[i] = v

		case KindInt:
			v, ok := arg.(int)
			if !ok {
				return nil, formatErr(s, p, arg)
			}

			out[i] = strconv.Itoa(v)

		case KindBool:
			v, ok := arg.(bool)
			if !ok {
				return nil, formatErr(s, p, arg)
			}

			if v {
				out[i] = "1"
			} else {
				out[i] = "0"
			}

		case KindFloat:
			v, ok := arg.(float64)
			if !ok {
				return nil, formatErr(s, p, arg)
			}

			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	for len(out) > 0 {
		last := len(out) - 1
		if !s.Params[last].Optional || out[last] != "" {
			break
		}

		out = out[:last]
	}

	return out, nil
}

func formatErr(s *Spec, p Param, arg any) error {
	return fmt.Errorf("%s: parameter %s expects %s, got %T", s.Function, p.Name, p.Kind, arg)
}

// Lookup returns the spec for a daemon function name.
func Lookup(function string) (*Spec, bool) {
	spec, ok := registry[function]

	return spec, ok
}

// Names returns all catalog function names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func init() {
	for _, spec := range registry {
		if err := spec.compile(); err != nil {
			// The registry is static; a schema that fails to compile is a
			// programmer error caught by the package tests.
			panic(err)
		}
	}
}
