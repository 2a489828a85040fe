package inlinekv

import eng "github.com/reoring/inlinekv/internal/engine"

// KeyPointer renders a key as a one-segment JSON Pointer ("~" and "/" escaped).
func KeyPointer(key string) string { return eng.KeyPointer(key) }

// IssueAt creates an Issue for the given key with provided code and message.
func IssueAt(key, code, msg string, offset int64) Issue {
	return Issue{Path: KeyPointer(key), Code: code, Message: msg, Offset: offset}
}
