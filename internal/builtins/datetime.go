package builtins

import (
	"fmt"
	"time"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// dateTools is grounded on original_source/kaynat/stdlib/date_tools.py.
// Python's strftime directives ('%Y-%m-%d', '%H:%M:%S') are translated to
// Go's reference-time layouts once, here, rather than per call.
func dateTools() []registration {
	return []registration{
		{"current_date", biCurrentDate},
		{"current_time", biCurrentTime},
		{"current_timestamp", biCurrentTimestamp},
		{"format_date", biFormatDate},
		{"parse_date", biParseDate},
	}
}

const dateLayout = "2006-01-02"
const timeLayout = "15:04:05"

func biCurrentDate(args []interp.Value) (interp.Value, error) {
	return strVal(time.Now().Format(dateLayout)), nil
}

func biCurrentTime(args []interp.Value) (interp.Value, error) {
	return strVal(time.Now().Format(timeLayout)), nil
}

func biCurrentTimestamp(args []interp.Value) (interp.Value, error) {
	return numVal(float64(time.Now().Unix())), nil
}

// formatLayouts maps the Python strftime directives date_tools.py exposes
// to their Go time.Format equivalents.
var formatLayouts = map[string]string{
	"%Y-%m-%d":          "2006-01-02",
	"%H:%M:%S":          "15:04:05",
	"%Y-%m-%d %H:%M:%S": "2006-01-02 15:04:05",
}

// biFormatDate mirrors the original's simplified implementation: the date
// argument is accepted for signature compatibility but the current time is
// always what gets formatted, per date_tools.py's own comment.
func biFormatDate(args []interp.Value) (interp.Value, error) {
	layout := dateLayout
	if len(args) > 1 {
		if format, ok := args[1].(*interp.String); ok {
			if goLayout, ok := formatLayouts[format.Value]; ok {
				layout = goLayout
			} else {
				layout = format.Value
			}
		}
	}
	return strVal(time.Now().Format(layout)), nil
}

func biParseDate(args []interp.Value) (interp.Value, error) {
	s, err := strArg("parse_date", args, 0)
	if err != nil {
		return nil, err
	}
	dt, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}
	return strVal(dt.Format(dateLayout)), nil
}
