package builtins

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// stringTools is grounded on original_source/kaynat/stdlib/string_tools.py.
// to_titlecase is the one case-conversion built-in that needs more than
// ASCII upper/lower, so it is the home for golang.org/x/text/cases — the
// teacher doesn't touch Unicode case folding, but the pack's x/text
// dependency (promoted to direct in go.mod) fits this exactly.
func stringTools() []registration {
	return []registration{
		{"to_uppercase", biToUppercase},
		{"to_lowercase", biToLowercase},
		{"to_titlecase", biToTitlecase},
		{"trim", biTrim},
		{"trim_left", biTrimLeft},
		{"trim_right", biTrimRight},
		{"starts_with", biStartsWith},
		{"ends_with", biEndsWith},
		{"contains", biContains},
		{"find_position", biFindPosition},
		{"replace_text", biReplaceText},
		{"split_string", biSplitString},
		{"join_strings", biJoinStrings},
		{"substring", biSubstring},
		{"reverse_string", biReverseString},
		{"repeat_string", biRepeatString},
		{"string_length", biStringLength},
		{"is_empty", biIsEmpty},
		{"is_numeric", biIsNumeric},
		{"is_alphabetic", biIsAlphabetic},
		{"is_alphanumeric", biIsAlphanumeric},
		{"pad_left", biPadLeft},
		{"pad_right", biPadRight},
		{"center_string", biCenterString},
	}
}

var titleCaser = cases.Title(language.Und)

func biToUppercase(args []interp.Value) (interp.Value, error) {
	s, err := strArg("to_uppercase", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(strings.ToUpper(s)), nil
}

func biToLowercase(args []interp.Value) (interp.Value, error) {
	s, err := strArg("to_lowercase", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(strings.ToLower(s)), nil
}

func biToTitlecase(args []interp.Value) (interp.Value, error) {
	s, err := strArg("to_titlecase", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(titleCaser.String(s)), nil
}

func biTrim(args []interp.Value) (interp.Value, error) {
	s, err := strArg("trim", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(strings.TrimSpace(s)), nil
}

func biTrimLeft(args []interp.Value) (interp.Value, error) {
	s, err := strArg("trim_left", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(strings.TrimLeft(s, " \t\n\r\v\f")), nil
}

func biTrimRight(args []interp.Value) (interp.Value, error) {
	s, err := strArg("trim_right", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(strings.TrimRight(s, " \t\n\r\v\f")), nil
}

func biStartsWith(args []interp.Value) (interp.Value, error) {
	s, err := strArg("starts_with", args, 0)
	if err != nil {
		return nil, err
	}
	prefix, err := strArg("starts_with", args, 1)
	if err != nil {
		return nil, err
	}
	return boolVal(strings.HasPrefix(s, prefix)), nil
}

func biEndsWith(args []interp.Value) (interp.Value, error) {
	s, err := strArg("ends_with", args, 0)
	if err != nil {
		return nil, err
	}
	suffix, err := strArg("ends_with", args, 1)
	if err != nil {
		return nil, err
	}
	return boolVal(strings.HasSuffix(s, suffix)), nil
}

func biContains(args []interp.Value) (interp.Value, error) {
	s, err := strArg("contains", args, 0)
	if err != nil {
		return nil, err
	}
	sub, err := strArg("contains", args, 1)
	if err != nil {
		return nil, err
	}
	return boolVal(strings.Contains(s, sub)), nil
}

func biFindPosition(args []interp.Value) (interp.Value, error) {
	s, err := strArg("find_position", args, 0)
	if err != nil {
		return nil, err
	}
	sub, err := strArg("find_position", args, 1)
	if err != nil {
		return nil, err
	}
	return numVal(float64(strings.Index(s, sub))), nil
}

func biReplaceText(args []interp.Value) (interp.Value, error) {
	s, err := strArg("replace_text", args, 0)
	if err != nil {
		return nil, err
	}
	old, err := strArg("replace_text", args, 1)
	if err != nil {
		return nil, err
	}
	new, err := strArg("replace_text", args, 2)
	if err != nil {
		return nil, err
	}
	return strVal(strings.ReplaceAll(s, old, new)), nil
}

func biSplitString(args []interp.Value) (interp.Value, error) {
	s, err := strArg("split_string", args, 0)
	if err != nil {
		return nil, err
	}
	delim := optStr(args, 1, " ")
	parts := strings.Split(s, delim)
	elements := make([]interp.Value, len(parts))
	for i, p := range parts {
		elements[i] = strVal(p)
	}
	return interp.NewList(elements), nil
}

func biJoinStrings(args []interp.Value) (interp.Value, error) {
	list, err := listArg("join_strings", args, 0)
	if err != nil {
		return nil, err
	}
	sep := optStr(args, 1, "")
	parts := make([]string, len(list.Elements))
	for i, el := range list.Elements {
		parts[i] = el.String()
	}
	return strVal(strings.Join(parts, sep)), nil
}

// resolveSliceIndex turns a possibly-negative, possibly-out-of-range Python-
// style index into a clamped rune offset into a sequence of length n.
func resolveSliceIndex(idx, n int) int {
	if idx < 0 {
		idx += n
	}
	if idx < 0 {
		return 0
	}
	if idx > n {
		return n
	}
	return idx
}

func biSubstring(args []interp.Value) (interp.Value, error) {
	s, err := strArg("substring", args, 0)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	start, err := numArg("substring", args, 1)
	if err != nil {
		return nil, err
	}
	startIdx := resolveSliceIndex(int(start), len(runes))
	endIdx := len(runes)
	if len(args) > 2 {
		end, err := numArg("substring", args, 2)
		if err != nil {
			return nil, err
		}
		endIdx = resolveSliceIndex(int(end), len(runes))
	}
	if startIdx > endIdx {
		return strVal(""), nil
	}
	return strVal(string(runes[startIdx:endIdx])), nil
}

func biReverseString(args []interp.Value) (interp.Value, error) {
	s, err := strArg("reverse_string", args, 0)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return strVal(string(runes)), nil
}

func biRepeatString(args []interp.Value) (interp.Value, error) {
	s, err := strArg("repeat_string", args, 0)
	if err != nil {
		return nil, err
	}
	n, err := numArg("repeat_string", args, 1)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return strVal(""), nil
	}
	return strVal(strings.Repeat(s, int(n))), nil
}

func biStringLength(args []interp.Value) (interp.Value, error) {
	s, err := strArg("string_length", args, 0)
	if err != nil {
		return nil, err
	}
	return numVal(float64(len([]rune(s)))), nil
}

func biIsEmpty(args []interp.Value) (interp.Value, error) {
	s, err := strArg("is_empty", args, 0)
	if err != nil {
		return nil, err
	}
	return boolVal(len(s) == 0), nil
}

func biIsNumeric(args []interp.Value) (interp.Value, error) {
	s, err := strArg("is_numeric", args, 0)
	if err != nil {
		return nil, err
	}
	return boolVal(allRunes(s, unicode.IsDigit)), nil
}

func biIsAlphabetic(args []interp.Value) (interp.Value, error) {
	s, err := strArg("is_alphabetic", args, 0)
	if err != nil {
		return nil, err
	}
	return boolVal(allRunes(s, unicode.IsLetter)), nil
}

func biIsAlphanumeric(args []interp.Value) (interp.Value, error) {
	s, err := strArg("is_alphanumeric", args, 0)
	if err != nil {
		return nil, err
	}
	return boolVal(allRunes(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })), nil
}

func allRunes(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func biPadLeft(args []interp.Value) (interp.Value, error) {
	s, err := strArg("pad_left", args, 0)
	if err != nil {
		return nil, err
	}
	width, err := numArg("pad_left", args, 1)
	if err != nil {
		return nil, err
	}
	fill := firstRuneOrSpace(optStr(args, 2, " "))
	return strVal(padTo(s, int(width), fill, true)), nil
}

func biPadRight(args []interp.Value) (interp.Value, error) {
	s, err := strArg("pad_right", args, 0)
	if err != nil {
		return nil, err
	}
	width, err := numArg("pad_right", args, 1)
	if err != nil {
		return nil, err
	}
	fill := firstRuneOrSpace(optStr(args, 2, " "))
	return strVal(padTo(s, int(width), fill, false)), nil
}

func biCenterString(args []interp.Value) (interp.Value, error) {
	s, err := strArg("center_string", args, 0)
	if err != nil {
		return nil, err
	}
	width, err := numArg("center_string", args, 1)
	if err != nil {
		return nil, err
	}
	fill := firstRuneOrSpace(optStr(args, 2, " "))

	runes := []rune(s)
	w := int(width)
	deficit := w - len(runes)
	if deficit <= 0 {
		return strVal(s), nil
	}
	left := deficit / 2
	right := deficit - left
	return strVal(strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)), nil
}

func firstRuneOrSpace(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func padTo(s string, width int, fill rune, left bool) string {
	runes := []rune(s)
	deficit := width - len(runes)
	if deficit <= 0 {
		return s
	}
	padding := strings.Repeat(string(fill), deficit)
	if left {
		return padding + s
	}
	return s + padding
}
