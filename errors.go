package datemask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/datemask/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidSeparatorStart = "invalid_separator_start"
	CodeTooManySeparators     = "too_many_separators"
	CodeMonthOutOfRange       = "month_out_of_range"
	CodeDayOutOfRange         = "day_out_of_range"
	CodeYearOutOfRange        = "year_out_of_range"
	CodeInvalidLeapDay        = "invalid_leap_day"
	CodeNonNumericCharacter   = "non_numeric_character"
	// Construction and codec errors (returned, never advisory)
	CodeInvalidConfig = "invalid_config"
	CodeInvalidFormat = "invalid_format"
)

// Paths of the date components inside an Issue.
const (
	PathRoot  = "/"
	PathDay   = "/day"
	PathMonth = "/month"
	PathYear  = "/year"
)

// Issue represents a single parse or validation entry.
type Issue struct {
	Path    string // JSON Pointer of the component (for example: /month).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"min":"1", "max":"12", "got":"13"})
	// for i18n and observability.
	Params map[string]string
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. month_out_of_range at /month
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes lists the issue codes in order.
func (iss Issues) Codes() []string {
	if len(iss) == 0 {
		return nil
	}
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// Has reports whether any issue carries code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with a localized message.
// kv is read as key/value pairs and becomes both Params and message data.
func IssueAt(path, code string, kv ...string) Issue {
	var params map[string]string
	if len(kv) > 1 {
		params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[kv[i]] = kv[i+1]
		}
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, params), Params: params}
}
