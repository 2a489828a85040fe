package inlinekv

import (
	"errors"
	"strings"

	"github.com/reoring/inlinekv/i18n"
	eng "github.com/reoring/inlinekv/internal/engine"
)

// Parse converts one line of inline key-value text into an ordered Map.
// It never fails: empty input and malformed lists yield an empty Map.
func Parse(text string, opts ...ParseOpt) Map {
	m, _ := ParseWithIssues(text, opts...)
	return m
}

// ParseOptional is Parse for an optional line; nil yields an empty Map.
func ParseOptional(text *string, opts ...ParseOpt) Map {
	if text == nil {
		return Map{}
	}
	return Parse(*text, opts...)
}

// ParseWithIssues is Parse plus diagnostics. The Map is always identical to
// what Parse returns; Issues explain why a line degraded to an empty Map or
// carry non-fatal warnings such as duplicate keys under Warn.
func ParseWithIssues(text string, opts ...ParseOpt) (Map, Issues) {
	opt := lastOpt(opts)
	eo := eng.EnforceOptions{OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey), MaxBytes: opt.MaxBytes}
	if err := eng.CheckSize(text, eo); err != nil {
		return Map{}, toIssues(err, opt.Translator)
	}

	text = strings.TrimSpace(text)
	var m Map
	if text == "" {
		return m, nil
	}
	if isBareValue(text) {
		m.set(DefaultKey, Coerce(text))
		return m, nil
	}

	pairs, err := splitSafely(opt.Splitter, text)
	if err != nil {
		return Map{}, toIssues(err, opt.Translator)
	}
	var warnings Issues
	eo.IssueSink = func(si eng.SimpleIssue) {
		warnings = AppendIssues(warnings, fromEngineIssue(si, opt.Translator))
	}
	if err := eng.EnforcePairs(toEnginePairs(pairs), eo); err != nil {
		return Map{}, toIssues(err, opt.Translator)
	}
	for _, p := range pairs {
		m.set(p.Key, Coerce(p.Raw))
	}
	return m, warnings
}

// isBareValue reports whether the trimmed line is a single value. The quote
// prefix check must come first: a quoted value may contain a colon.
func isBareValue(text string) bool {
	if text[0] == '"' || text[0] == '\'' {
		return true
	}
	return !strings.Contains(text, ":")
}

// ---- helpers (engine conversion, error mapping) ----

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toEnginePairs(pairs []Pair) []eng.Pair {
	out := make([]eng.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = eng.Pair{Key: p.Key, Raw: p.Raw, Offset: p.Offset}
	}
	return out
}

func fromEngineIssue(si eng.SimpleIssue, tr i18n.Translator) Issue {
	data := map[string]string{"detail": si.Message}
	return Issue{
		Path:    si.Path,
		Code:    si.Code,
		Message: tr.Message(si.Code, data),
		Hint:    si.Message,
		Offset:  si.Offset,
	}
}

func toIssues(err error, tr i18n.Translator) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return localize(ii, tr)
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, fromEngineIssue(ie.SimpleIssue, tr))
	}
	return AppendIssues(nil, Issue{
		Path:    "/",
		Code:    CodeParseError,
		Message: tr.Message(CodeParseError, nil),
		Hint:    err.Error(),
		Cause:   err,
		Offset:  -1,
	})
}

// localize renders Issues built outside the engine (Splitter drivers, the
// panic shield) through the translator. The driver's own text moves to Hint
// unless a Hint is already present.
func localize(ii Issues, tr i18n.Translator) Issues {
	out := make(Issues, 0, len(ii))
	for _, it := range ii {
		if it.Hint == "" {
			it.Hint = it.Message
		}
		it.Message = tr.Message(it.Code, map[string]string{"detail": it.Message})
		out = AppendIssues(out, it)
	}
	return out
}
