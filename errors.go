package inlinekv

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeParseError        = "parse_error"
	CodeUnterminatedQuote = "unterminated_quote"
	CodeMissingColon      = "missing_colon"
	CodeEmptyEntry        = "empty_entry"
	CodeEmptyKey          = "empty_key"
	CodeUnexpectedChar    = "unexpected_char"
	CodeDuplicateKey      = "duplicate_key"
	CodeTooLong           = "too_long"
	CodeUnsupportedValue  = "unsupported_value"
	CodeInvalidFormat     = "invalid_format"
	CodeOverflow          = "overflow"
)

// Issue represents a single diagnostic entry.
type Issue struct {
	Path    string // JSON Pointer of the affected key (for example: /name); "/" for the whole line.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: scanner detail, offending token, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input line (-1 when unknown).
}

// Issues is a collection of diagnostics that implements error.
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
		// e.g. missing_colon at / (offset 7)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Offset >= 0 {
			fmt.Fprintf(b, " (offset %d)", it.Offset)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
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
