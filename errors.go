package soaplib

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeInvalidType flags a value the target descriptor cannot encode
	// (non-textual value to a text encoder, non-sequence to an array encoder).
	CodeInvalidType = "invalid_type"
	// CodeParseError flags malformed wire text (dates, datetimes, numbers).
	CodeParseError = "parse_error"
	// CodeInvalidEncoding flags element text that is not valid UTF-8 under a
	// strict text descriptor.
	CodeInvalidEncoding = "invalid_encoding"
)

// Issue represents a single conversion error.
type Issue struct {
	Path    string // Field or element name the conversion was targeting.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"value": "12x", "field":
	// "ratings"}) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of conversion errors that implements error.
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
		// e.g. parse_error at retval: date [2020-13] not in known format
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
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
