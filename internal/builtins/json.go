package builtins

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// jsonTools is grounded on original_source/kaynat/stdlib/json_tools.py,
// but built on gjson/sjson rather than encoding/json: parse_json/to_json
// walk a gjson.Result tree and rebuild JSON text with sjson.SetRaw, while
// json_get/json_set expose gjson/sjson's native path syntax directly to
// Kaynat programs (SPEC_FULL.md's domain-stack wiring for this pair).
func jsonTools() []registration {
	return []registration{
		{"parse_json", biParseJSON},
		{"to_json", biToJSON},
		{"json_get", biJSONGet},
		{"json_set", biJSONSet},
	}
}

func biParseJSON(args []interp.Value) (interp.Value, error) {
	s, err := strArg("parse_json", args, 0)
	if err != nil {
		return nil, err
	}
	result := gjson.Parse(s)
	if !result.Exists() && s != "null" {
		return nil, fmt.Errorf("invalid JSON: %s", s)
	}
	return gjsonToValue(result), nil
}

func gjsonToValue(r gjson.Result) interp.Value {
	switch r.Type {
	case gjson.Null:
		return &interp.Null{}
	case gjson.False:
		return boolVal(false)
	case gjson.True:
		return boolVal(true)
	case gjson.Number:
		return numVal(r.Num)
	case gjson.String:
		return strVal(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			var elements []interp.Value
			r.ForEach(func(_, value gjson.Result) bool {
				elements = append(elements, gjsonToValue(value))
				return true
			})
			return interp.NewList(elements)
		}
		m := interp.NewMap()
		r.ForEach(func(key, value gjson.Result) bool {
			m.Set(key.String(), gjsonToValue(value))
			return true
		})
		return m
	default:
		return &interp.Null{}
	}
}

// valueToJSON serializes a Kaynat value to a JSON text fragment, building
// composite values with sjson.SetRaw so every branch of the conversion
// exercises the same library json_get/json_set use.
func valueToJSON(v interp.Value) (string, error) {
	switch val := v.(type) {
	case *interp.Null:
		return "null", nil
	case *interp.Boolean:
		return strconv.FormatBool(val.Value), nil
	case *interp.Number:
		return val.String(), nil
	case *interp.String:
		raw, err := sjson.Set("", "v", val.Value)
		if err != nil {
			return "", err
		}
		return gjson.Get(raw, "v").Raw, nil
	case *interp.List:
		result := "[]"
		var err error
		for i, el := range val.Elements {
			frag, ferr := valueToJSON(el)
			if ferr != nil {
				return "", ferr
			}
			result, err = sjson.SetRaw(result, strconv.Itoa(i), frag)
			if err != nil {
				return "", err
			}
		}
		return result, nil
	case *interp.Map:
		result := "{}"
		var err error
		for _, k := range val.Keys() {
			elVal, _ := val.Get(k)
			frag, ferr := valueToJSON(elVal)
			if ferr != nil {
				return "", ferr
			}
			result, err = sjson.SetRaw(result, sjsonEscapeKey(k), frag)
			if err != nil {
				return "", err
			}
		}
		return result, nil
	default:
		raw, err := sjson.Set("", "v", val.String())
		if err != nil {
			return "", err
		}
		return gjson.Get(raw, "v").Raw, nil
	}
}

// sjsonEscapeKey escapes path metacharacters (. * ? and the path separator)
// so an arbitrary map key is treated as a single literal path segment.
func sjsonEscapeKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}

func biToJSON(args []interp.Value) (interp.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("to_json: missing argument 1")
	}
	raw, err := valueToJSON(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot serialize to JSON: %w", err)
	}
	return strVal(raw), nil
}

func biJSONGet(args []interp.Value) (interp.Value, error) {
	s, err := strArg("json_get", args, 0)
	if err != nil {
		return nil, err
	}
	path, err := strArg("json_get", args, 1)
	if err != nil {
		return nil, err
	}
	result := gjson.Get(s, path)
	if !result.Exists() {
		return &interp.Null{}, nil
	}
	return gjsonToValue(result), nil
}

func biJSONSet(args []interp.Value) (interp.Value, error) {
	s, err := strArg("json_set", args, 0)
	if err != nil {
		return nil, err
	}
	path, err := strArg("json_set", args, 1)
	if err != nil {
		return nil, err
	}
	if len(args) < 3 {
		return nil, fmt.Errorf("json_set: missing value argument")
	}
	frag, err := valueToJSON(args[2])
	if err != nil {
		return nil, fmt.Errorf("cannot serialize to JSON: %w", err)
	}
	out, err := sjson.SetRaw(s, path, frag)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON path: %w", err)
	}
	return strVal(out), nil
}
