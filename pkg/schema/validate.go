package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Violation is a single mismatch between a document and its schema.
type Violation struct {
	Path    string
	Message string
}

func (v *Violation) Error() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// Validate parses doc and checks it against def. On success it returns the
// document re-encoded with undeclared object properties removed. All
// violations are reported together as a *multierror.Error of *Violation.
func Validate(def jsonschema.Definition, doc []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parsing JSON: unexpected data after top-level value")
	}

	v := &validator{}
	normalized := v.check("", def, value)
	if err := v.errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	out, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("encoding validated object: %w", err)
	}
	return out, nil
}

type validator struct {
	errs *multierror.Error
}

func (v *validator) fail(path, format string, args ...any) {
	if v.errs == nil {
		v.errs = &multierror.Error{ErrorFormat: formatViolations}
	}
	v.errs = multierror.Append(v.errs, &Violation{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) check(path string, def jsonschema.Definition, value any) any {
	switch def.Type {
	case jsonschema.Object:
		return v.checkObject(path, def, value)
	case jsonschema.Array:
		return v.checkArray(path, def, value)
	case jsonschema.String:
		s, ok := value.(string)
		if !ok {
			v.fail(path, "expected string, got %s", typeName(value))
			return value
		}
		if len(def.Enum) > 0 && !slices.Contains(def.Enum, s) {
			v.fail(path, "value %q is not one of [%s]", s, strings.Join(def.Enum, ", "))
		}
	case jsonschema.Number:
		if _, ok := value.(json.Number); !ok {
			v.fail(path, "expected number, got %s", typeName(value))
		}
	case jsonschema.Integer:
		n, ok := value.(json.Number)
		if !ok {
			v.fail(path, "expected integer, got %s", typeName(value))
			return value
		}
		if !isInteger(n) {
			v.fail(path, "expected integer, got %s", n.String())
		}
	case jsonschema.Boolean:
		if _, ok := value.(bool); !ok {
			v.fail(path, "expected boolean, got %s", typeName(value))
		}
	case jsonschema.Null:
		if value != nil {
			v.fail(path, "expected null, got %s", typeName(value))
		}
	}
	return value
}

func (v *validator) checkObject(path string, def jsonschema.Definition, value any) any {
	obj, ok := value.(map[string]any)
	if !ok {
		v.fail(path, "expected object, got %s", typeName(value))
		return value
	}

	for _, name := range def.Required {
		if _, ok := obj[name]; !ok {
			v.fail(joinKey(path, name), "required property is missing")
		}
	}

	keepExtra := def.AdditionalProperties == true
	out := make(map[string]any, len(obj))
	for _, name := range sortedKeys(obj) {
		propDef, declared := def.Properties[name]
		switch {
		case declared:
			out[name] = v.check(joinKey(path, name), propDef, obj[name])
		case keepExtra:
			out[name] = obj[name]
		}
	}
	return out
}

func (v *validator) checkArray(path string, def jsonschema.Definition, value any) any {
	arr, ok := value.([]any)
	if !ok {
		v.fail(path, "expected array, got %s", typeName(value))
		return value
	}
	if def.Items == nil {
		return arr
	}

	out := make([]any, len(arr))
	for i, item := range arr {
		out[i] = v.check(fmt.Sprintf("%s[%d]", path, i), *def.Items, item)
	}
	return out
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isInteger(n json.Number) bool {
	if _, err := n.Int64(); err == nil {
		return true
	}
	f, ok := new(big.Float).SetString(n.String())
	return ok && f.IsInt()
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func formatViolations(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	if len(msgs) == 1 {
		return "schema validation failed: " + msgs[0]
	}
	return fmt.Sprintf("schema validation failed with %d violations: %s", len(msgs), strings.Join(msgs, "; "))
}
