package inlinekv

import "github.com/reoring/inlinekv/i18n"

// DefaultKey is the key used when the input is a single bare value.
const DefaultKey = "_"

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	// OnDuplicateKey: Ignore overwrites silently, Warn overwrites and records an
	// issue, Error treats the line as malformed.
	OnDuplicateKey Severity
}

// ParseOpt bundles parsing options. When several are passed the last one wins.
type ParseOpt struct {
	// Splitter replaces the built-in quote-aware scanner for key-value lists.
	Splitter   Splitter
	Strictness Strictness
	// MaxBytes rejects longer input (0 = unlimited).
	MaxBytes int
	// Translator renders Issue messages; nil selects English.
	Translator i18n.Translator
}

func lastOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Splitter == nil {
		opt.Splitter = scanSplitter{}
	}
	if opt.Translator == nil {
		opt.Translator = i18n.New("en")
	}
	return opt
}
