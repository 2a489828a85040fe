package i18n

import (
	"strings"
	"testing"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	en := New("en")
	if msg := en.Message("missing_colon", nil); msg == "missing_colon" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	ja := New("ja")
	if msg := ja.Message("missing_colon", nil); msg == en.Message("missing_colon", nil) {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// unknown languages fall back to en
	if got, want := New("fr").Message("empty_key", nil), en.Message("empty_key", nil); got != want {
		t.Fatalf("fallback: got %q want %q", got, want)
	}
}

func TestTranslator_DetailAndUnknownCode(t *testing.T) {
	tr := New("en")
	msg := tr.Message("duplicate_key", map[string]string{"detail": "key 'a' duplicated"})
	if !strings.HasPrefix(msg, "duplicate key") || !strings.Contains(msg, "key 'a' duplicated") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := tr.Message("no_such_code", map[string]string{"detail": "x"}); msg != "no_such_code" {
		t.Fatalf("unknown code should echo itself, got %q", msg)
	}
}
