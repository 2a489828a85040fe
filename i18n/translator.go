package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "detail").
type Translator interface {
	Message(code string, data map[string]string) string
}

// New returns the built-in dictionary Translator for lang ("en"/"ja").
// Unknown languages fall back to English.
func New(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.lookup(code)
	if d := data["detail"]; d != "" && msg != code {
		return msg + ": " + d
	}
	return msg
}

func (t dictTranslator) lookup(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "解析エラー"
		case "unterminated_quote":
			return "引用符が閉じられていません"
		case "missing_colon":
			return "コロンがありません"
		case "empty_entry":
			return "空の項目です"
		case "empty_key":
			return "キーが空です"
		case "unexpected_char":
			return "予期しない文字です"
		case "duplicate_key":
			return "キーが重複しています"
		case "too_long":
			return "長すぎます"
		case "unsupported_value":
			return "サポートされていない値です"
		case "invalid_format":
			return "形式が不正です"
		case "overflow":
			return "表現できない数値です"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "parse error"
		case "unterminated_quote":
			return "unterminated quote"
		case "missing_colon":
			return "missing colon"
		case "empty_entry":
			return "empty entry"
		case "empty_key":
			return "empty key"
		case "unexpected_char":
			return "unexpected character"
		case "duplicate_key":
			return "duplicate key"
		case "too_long":
			return "too long"
		case "unsupported_value":
			return "unsupported value"
		case "invalid_format":
			return "invalid format"
		case "overflow":
			return "number out of range"
		}
	}
	return code
}
