package builtins

import (
	"fmt"
	"regexp"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// patternTools is grounded on
// original_source/kaynat/stdlib/pattern_tools.py, moved from Python's re
// module to Go's standard regexp package (RE2 syntax) — see DESIGN.md for
// why no pack dependency replaces it here. is_valid_email/is_valid_url
// carry over the original's two convenience predicates as a supplement.
func patternTools() []registration {
	return []registration{
		{"matches_pattern", biMatchesPattern},
		{"find_all_matches", biFindAllMatches},
		{"replace_pattern", biReplacePattern},
		{"split_by_pattern", biSplitByPattern},
		{"is_valid_email", biIsValidEmail},
		{"is_valid_url", biIsValidURL},
	}
}

func biMatchesPattern(args []interp.Value) (interp.Value, error) {
	text, err := strArg("matches_pattern", args, 0)
	if err != nil {
		return nil, err
	}
	pattern, err := strArg("matches_pattern", args, 1)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	loc := re.FindStringIndex(text)
	return boolVal(loc != nil && loc[0] == 0), nil
}

func biFindAllMatches(args []interp.Value) (interp.Value, error) {
	pattern, err := strArg("find_all_matches", args, 0)
	if err != nil {
		return nil, err
	}
	text, err := strArg("find_all_matches", args, 1)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	matches := re.FindAllString(text, -1)
	elements := make([]interp.Value, len(matches))
	for i, m := range matches {
		elements[i] = strVal(m)
	}
	return interp.NewList(elements), nil
}

func biReplacePattern(args []interp.Value) (interp.Value, error) {
	text, err := strArg("replace_pattern", args, 0)
	if err != nil {
		return nil, err
	}
	pattern, err := strArg("replace_pattern", args, 1)
	if err != nil {
		return nil, err
	}
	replacement, err := strArg("replace_pattern", args, 2)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return strVal(re.ReplaceAllString(text, replacement)), nil
}

func biSplitByPattern(args []interp.Value) (interp.Value, error) {
	text, err := strArg("split_by_pattern", args, 0)
	if err != nil {
		return nil, err
	}
	pattern, err := strArg("split_by_pattern", args, 1)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	parts := re.Split(text, -1)
	elements := make([]interp.Value, len(parts))
	for i, p := range parts {
		elements[i] = strVal(p)
	}
	return interp.NewList(elements), nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var urlPattern = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)

func biIsValidEmail(args []interp.Value) (interp.Value, error) {
	s, err := strArg("is_valid_email", args, 0)
	if err != nil {
		return nil, err
	}
	return boolVal(emailPattern.MatchString(s)), nil
}

func biIsValidURL(args []interp.Value) (interp.Value, error) {
	s, err := strArg("is_valid_url", args, 0)
	if err != nil {
		return nil, err
	}
	return boolVal(urlPattern.MatchString(s)), nil
}
