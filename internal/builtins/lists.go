package builtins

import (
	"fmt"
	"sort"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// listTools is grounded on original_source/kaynat/stdlib/list_tools.py,
// keeping Python's in-place mutation idiom: the mutating operations here
// change the argument list itself (assigning back to lst.Elements, which may
// reuse its backing array) and return that same list.
func listTools() []registration {
	return []registration{
		{"list_append", biListAppend},
		{"list_prepend", biListPrepend},
		{"list_insert", biListInsert},
		{"list_remove", biListRemove},
		{"list_remove_at", biListRemoveAt},
		{"list_get", biListGet},
		{"list_slice", biListSlice},
		{"list_length", biListLength},
		{"list_is_empty", biListIsEmpty},
		{"list_contains", biListContains},
		{"list_index_of", biListIndexOf},
		{"list_count", biListCount},
		{"list_sort", biListSort},
		{"list_reverse", biListReverse},
		{"list_copy", biListCopy},
		{"list_clear", biListClear},
		{"list_extend", biListExtend},
		{"list_min", biListMin},
		{"list_max", biListMax},
		{"list_sum", biListSum},
		{"list_average", biListAverage},
	}
}

func listIndex(name string, args []interp.Value, i, n int) (int, error) {
	idx, err := numArg(name, args, i)
	if err != nil {
		return 0, err
	}
	return int(idx), nil
}

func biListAppend(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_append", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("list_append: missing item argument")
	}
	lst.Elements = append(lst.Elements, args[1])
	return lst, nil
}

func biListPrepend(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_prepend", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("list_prepend: missing item argument")
	}
	lst.Elements = append([]interp.Value{args[1]}, lst.Elements...)
	return lst, nil
}

func biListInsert(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_insert", args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := listIndex("list_insert", args, 1, len(lst.Elements))
	if err != nil {
		return nil, err
	}
	if len(args) < 3 {
		return nil, fmt.Errorf("list_insert: missing item argument")
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(lst.Elements) {
		idx = len(lst.Elements)
	}
	elems := make([]interp.Value, 0, len(lst.Elements)+1)
	elems = append(elems, lst.Elements[:idx]...)
	elems = append(elems, args[2])
	elems = append(elems, lst.Elements[idx:]...)
	lst.Elements = elems
	return lst, nil
}

func biListRemove(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_remove", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("list_remove: missing item argument")
	}
	for i, el := range lst.Elements {
		if interp.Equals(el, args[1]) {
			lst.Elements = append(lst.Elements[:i], lst.Elements[i+1:]...)
			return lst, nil
		}
	}
	return nil, fmt.Errorf("item not found in list")
}

func biListRemoveAt(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_remove_at", args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := listIndex("list_remove_at", args, 1, len(lst.Elements))
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(lst.Elements) {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	removed := lst.Elements[idx]
	lst.Elements = append(lst.Elements[:idx], lst.Elements[idx+1:]...)
	return removed, nil
}

func biListGet(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_get", args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := listIndex("list_get", args, 1, len(lst.Elements))
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(lst.Elements) {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	return lst.Elements[idx], nil
}

func biListSlice(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_slice", args, 0)
	if err != nil {
		return nil, err
	}
	start, err := listIndex("list_slice", args, 1, len(lst.Elements))
	if err != nil {
		return nil, err
	}
	start = resolveSliceIndex(start, len(lst.Elements))
	end := len(lst.Elements)
	if len(args) > 2 {
		e, err := listIndex("list_slice", args, 2, len(lst.Elements))
		if err != nil {
			return nil, err
		}
		end = resolveSliceIndex(e, len(lst.Elements))
	}
	if start > end {
		return interp.NewList(nil), nil
	}
	sliced := make([]interp.Value, end-start)
	copy(sliced, lst.Elements[start:end])
	return interp.NewList(sliced), nil
}

func biListLength(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_length", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(float64(len(lst.Elements))), nil
}

func biListIsEmpty(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_is_empty", args, 0)
	if err != nil {
		return nil, err
	}
	return boolVal(len(lst.Elements) == 0), nil
}

func biListContains(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_contains", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("list_contains: missing item argument")
	}
	for _, el := range lst.Elements {
		if interp.Equals(el, args[1]) {
			return boolVal(true), nil
		}
	}
	return boolVal(false), nil
}

func biListIndexOf(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_index_of", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("list_index_of: missing item argument")
	}
	for i, el := range lst.Elements {
		if interp.Equals(el, args[1]) {
			return numVal(float64(i)), nil
		}
	}
	return numVal(-1), nil
}

func biListCount(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_count", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("list_count: missing item argument")
	}
	count := 0
	for _, el := range lst.Elements {
		if interp.Equals(el, args[1]) {
			count++
		}
	}
	return numVal(float64(count)), nil
}

// sortKey orders elements by numeric value when every element is a Number,
// falling back to lexical string order otherwise (mirroring the original's
// `key=lambda x: x.value if hasattr(x, 'value') else x`).
func sortKey(elements []interp.Value) func(i, j int) bool {
	allNumbers := true
	for _, el := range elements {
		if _, ok := el.(*interp.Number); !ok {
			allNumbers = false
			break
		}
	}
	if allNumbers {
		return func(i, j int) bool {
			return elements[i].(*interp.Number).Value < elements[j].(*interp.Number).Value
		}
	}
	return func(i, j int) bool {
		return elements[i].String() < elements[j].String()
	}
}

func biListSort(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_sort", args, 0)
	if err != nil {
		return nil, err
	}
	reverse := len(args) > 1 && args[1].Truthy()
	less := sortKey(lst.Elements)
	sort.SliceStable(lst.Elements, func(i, j int) bool {
		if reverse {
			return less(j, i)
		}
		return less(i, j)
	})
	return lst, nil
}

func biListReverse(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_reverse", args, 0)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(lst.Elements)-1; i < j; i, j = i+1, j-1 {
		lst.Elements[i], lst.Elements[j] = lst.Elements[j], lst.Elements[i]
	}
	return lst, nil
}

func biListCopy(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_copy", args, 0)
	if err != nil {
		return nil, err
	}
	copied := make([]interp.Value, len(lst.Elements))
	copy(copied, lst.Elements)
	return interp.NewList(copied), nil
}

func biListClear(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_clear", args, 0)
	if err != nil {
		return nil, err
	}
	lst.Elements = nil
	return lst, nil
}

func biListExtend(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_extend", args, 0)
	if err != nil {
		return nil, err
	}
	other, err := listArg("list_extend", args, 1)
	if err != nil {
		return nil, err
	}
	lst.Elements = append(lst.Elements, other.Elements...)
	return lst, nil
}

func biListMin(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_min", args, 0)
	if err != nil {
		return nil, err
	}
	if len(lst.Elements) == 0 {
		return nil, fmt.Errorf("cannot find min of empty list")
	}
	less := sortKey(lst.Elements)
	best := 0
	for i := 1; i < len(lst.Elements); i++ {
		if less(i, best) {
			best = i
		}
	}
	return lst.Elements[best], nil
}

func biListMax(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_max", args, 0)
	if err != nil {
		return nil, err
	}
	if len(lst.Elements) == 0 {
		return nil, fmt.Errorf("cannot find max of empty list")
	}
	less := sortKey(lst.Elements)
	best := 0
	for i := 1; i < len(lst.Elements); i++ {
		if less(best, i) {
			best = i
		}
	}
	return lst.Elements[best], nil
}

func biListSum(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_sum", args, 0)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, el := range lst.Elements {
		n, ok := el.(*interp.Number)
		if !ok {
			return nil, fmt.Errorf("list_sum requires a list of numbers, found %s", el.Type())
		}
		total += n.Value
	}
	return numVal(total), nil
}

func biListAverage(args []interp.Value) (interp.Value, error) {
	lst, err := listArg("list_average", args, 0)
	if err != nil {
		return nil, err
	}
	if len(lst.Elements) == 0 {
		return nil, fmt.Errorf("cannot calculate average of empty list")
	}
	sum, err := biListSum(args)
	if err != nil {
		return nil, err
	}
	return numVal(sum.(*interp.Number).Value / float64(len(lst.Elements))), nil
}
