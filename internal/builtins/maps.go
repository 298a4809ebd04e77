package builtins

import (
	"fmt"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// mapTools supplements spec.md's Map runtime value with the dictionary
// operations original_source/kaynat/stdlib implies a Map needs but the
// distilled spec's §6.3 table omits; grounded on the same shape as
// list_tools.py (a guard clause per function, then the underlying
// interp.Map primitive operation).
func mapTools() []registration {
	return []registration{
		{"map_get", biMapGet},
		{"map_set", biMapSet},
		{"map_keys", biMapKeys},
		{"map_values", biMapValues},
		{"map_contains_key", biMapContainsKey},
		{"map_remove", biMapRemove},
		{"map_size", biMapSize},
	}
}

func mapArg(name string, args []interp.Value, i int) (*interp.Map, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	m, ok := args[i].(*interp.Map)
	if !ok {
		return nil, fmt.Errorf("%s requires a map, got %s", name, args[i].Type())
	}
	return m, nil
}

func biMapGet(args []interp.Value) (interp.Value, error) {
	m, err := mapArg("map_get", args, 0)
	if err != nil {
		return nil, err
	}
	key, err := strArg("map_get", args, 1)
	if err != nil {
		return nil, err
	}
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	if len(args) > 2 {
		return args[2], nil
	}
	return &interp.Null{}, nil
}

func biMapSet(args []interp.Value) (interp.Value, error) {
	m, err := mapArg("map_set", args, 0)
	if err != nil {
		return nil, err
	}
	key, err := strArg("map_set", args, 1)
	if err != nil {
		return nil, err
	}
	if len(args) < 3 {
		return nil, fmt.Errorf("map_set: missing value argument")
	}
	m.Set(key, args[2])
	return m, nil
}

func biMapKeys(args []interp.Value) (interp.Value, error) {
	m, err := mapArg("map_keys", args, 0)
	if err != nil {
		return nil, err
	}
	keys := m.Keys()
	elements := make([]interp.Value, len(keys))
	for i, k := range keys {
		elements[i] = strVal(k)
	}
	return interp.NewList(elements), nil
}

func biMapValues(args []interp.Value) (interp.Value, error) {
	m, err := mapArg("map_values", args, 0)
	if err != nil {
		return nil, err
	}
	keys := m.Keys()
	elements := make([]interp.Value, len(keys))
	for i, k := range keys {
		v, _ := m.Get(k)
		elements[i] = v
	}
	return interp.NewList(elements), nil
}

func biMapContainsKey(args []interp.Value) (interp.Value, error) {
	m, err := mapArg("map_contains_key", args, 0)
	if err != nil {
		return nil, err
	}
	key, err := strArg("map_contains_key", args, 1)
	if err != nil {
		return nil, err
	}
	_, ok := m.Get(key)
	return boolVal(ok), nil
}

func biMapRemove(args []interp.Value) (interp.Value, error) {
	m, err := mapArg("map_remove", args, 0)
	if err != nil {
		return nil, err
	}
	key, err := strArg("map_remove", args, 1)
	if err != nil {
		return nil, err
	}
	m.Delete(key)
	return m, nil
}

func biMapSize(args []interp.Value) (interp.Value, error) {
	m, err := mapArg("map_size", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(float64(m.Len())), nil
}
