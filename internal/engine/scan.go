package engine

import "strings"

// SplitPairs splits an inline key-value list on top-level commas and colons.
// Quotes only open a quoted span at the start of a key or value, so an
// apostrophe inside a plain word is literal. Any structural problem aborts the
// whole line with an IssueError.
func SplitPairs(text string) ([]Pair, error) {
	sc := &scanner{s: text}
	var pairs []Pair
	for {
		sc.skipSpace()
		if sc.eof() || sc.peek() == ',' {
			return nil, fail(CodeEmptyEntry, sc.pos, "empty entry")
		}
		off := sc.pos
		key, err := sc.key()
		if err != nil {
			return nil, err
		}
		sc.pos++ // ':'
		raw, err := sc.value()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Key: key, Raw: raw, Offset: int64(off)})
		if sc.eof() {
			return pairs, nil
		}
		sc.pos++ // ','
	}
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool  { return sc.pos >= len(sc.s) }
func (sc *scanner) peek() byte { return sc.s[sc.pos] }

func (sc *scanner) skipSpace() {
	for !sc.eof() {
		switch sc.peek() {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			sc.pos++
		default:
			return
		}
	}
}

// key reads up to (not including) the separating colon.
func (sc *scanner) key() (string, error) {
	start := sc.pos
	if q := sc.peek(); q == '\'' || q == '"' {
		end, err := sc.quoted(q)
		if err != nil {
			return "", err
		}
		if end-start <= 2 {
			return "", fail(CodeEmptyKey, start, "empty quoted key")
		}
		inner := sc.s[start+1 : end-1]
		sc.pos = end
		sc.skipSpace()
		if sc.eof() || sc.peek() == ',' {
			return "", fail(CodeMissingColon, start, "missing ':' after key")
		}
		if sc.peek() != ':' {
			return "", fail(CodeUnexpectedChar, sc.pos, "unexpected character after quoted key")
		}
		if q == '"' {
			return UnquoteDouble(inner), nil
		}
		return UnquoteSingle(inner), nil
	}
	for ; !sc.eof(); sc.pos++ {
		switch sc.peek() {
		case ':':
			k := strings.TrimSpace(sc.s[start:sc.pos])
			if k == "" {
				return "", fail(CodeEmptyKey, start, "empty key")
			}
			return k, nil
		case ',':
			return "", fail(CodeMissingColon, start, "missing ':' in entry")
		}
	}
	return "", fail(CodeMissingColon, start, "missing ':' in entry")
}

// value reads up to the next top-level comma or the end of the line.
func (sc *scanner) value() (string, error) {
	sc.skipSpace()
	start := sc.pos
	if !sc.eof() {
		if q := sc.peek(); q == '\'' || q == '"' {
			end, err := sc.quoted(q)
			if err != nil {
				return "", err
			}
			sc.pos = end
			sc.skipSpace()
			if !sc.eof() && sc.peek() != ',' {
				return "", fail(CodeUnexpectedChar, sc.pos, "unexpected character after quoted value")
			}
			return sc.s[start:end], nil
		}
	}
	for !sc.eof() && sc.peek() != ',' {
		sc.pos++
	}
	return strings.TrimSpace(sc.s[start:sc.pos]), nil
}

// quoted returns the index just past the closing quote of the span opening at
// sc.pos. Inside single quotes '' is an escaped quote; inside double quotes a
// backslash shields the next byte.
func (sc *scanner) quoted(q byte) (int, error) {
	open := sc.pos
	for i := open + 1; i < len(sc.s); i++ {
		c := sc.s[i]
		switch {
		case q == '"' && c == '\\':
			i++
		case c == q:
			if q == '\'' && i+1 < len(sc.s) && sc.s[i+1] == '\'' {
				i++
				continue
			}
			return i + 1, nil
		}
	}
	return 0, fail(CodeUnterminatedQuote, open, "unterminated quote")
}
