package engine

import "strings"

// Pair is one `key: value` entry of an inline list.
type Pair struct {
	Key    string // Unquoted key.
	Raw    string // Trimmed value token; quotes are kept for the coercer.
	Offset int64  // Byte offset of the key in the line.
}

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
	Offset  int64
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// Issue codes produced by the engine.
const (
	CodeUnterminatedQuote = "unterminated_quote"
	CodeMissingColon      = "missing_colon"
	CodeEmptyEntry        = "empty_entry"
	CodeEmptyKey          = "empty_key"
	CodeUnexpectedChar    = "unexpected_char"
	CodeDuplicateKey      = "duplicate_key"
	CodeTooLong           = "too_long"
)

func fail(code string, offset int, msg string) error {
	return IssueError{SimpleIssue{Code: code, Path: "/", Message: msg, Offset: int64(offset)}}
}

// UnquoteDouble expands \n, \t and \\ in one left-to-right pass over the
// content of a double-quoted token. Any other backslash is kept as is.
func UnquoteDouble(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b = append(b, '\n')
				i++
				continue
			case 't':
				b = append(b, '\t')
				i++
				continue
			case '\\':
				b = append(b, '\\')
				i++
				continue
			}
		}
		b = append(b, c)
	}
	return string(b)
}

// UnquoteSingle collapses doubled single quotes in the content of a
// single-quoted token.
func UnquoteSingle(s string) string { return strings.ReplaceAll(s, "''", "'") }

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// KeyPointer renders a key as a one-segment JSON Pointer.
func KeyPointer(key string) string { return "/" + jsonPointerEscaper.Replace(key) }
