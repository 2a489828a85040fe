package inlinekv

import (
	"fmt"

	eng "github.com/reoring/inlinekv/internal/engine"
)

// Pair is one `key: value` entry produced by a Splitter. Key is already
// unquoted; Raw keeps its quotes so that Coerce can type it.
type Pair struct {
	Key    string
	Raw    string
	Offset int64 // byte offset of the key in the line; -1 if unknown
}

// Splitter turns a key-value list line into ordered pairs. The default
// implementation is a quote-aware scanner; source/yamlflow provides a driver
// backed by a YAML flow-mapping parser. Implementations report structural
// problems as errors (preferably Issues) and must not retain the input.
type Splitter interface {
	Split(text string) ([]Pair, error)
	Name() string
}

// ScanSplitter returns the built-in quote-aware scanner.
func ScanSplitter() Splitter { return scanSplitter{} }

type scanSplitter struct{}

func (scanSplitter) Split(text string) ([]Pair, error) {
	ep, err := eng.SplitPairs(text)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, len(ep))
	for i, p := range ep {
		pairs[i] = Pair{Key: p.Key, Raw: p.Raw, Offset: p.Offset}
	}
	return pairs, nil
}

func (scanSplitter) Name() string { return "scan" }

// splitSafely shields callers from panicking Splitter implementations.
func splitSafely(s Splitter, text string) (pairs []Pair, err error) {
	defer func() {
		if r := recover(); r != nil {
			pairs = nil
			err = Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("splitter %s panicked: %v", s.Name(), r), Offset: -1}}
		}
	}()
	return s.Split(text)
}
