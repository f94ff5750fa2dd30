package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "value" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.base(code)
	if v, ok := data["value"]; ok {
		msg += " [" + v + "]"
	}
	if f, ok := data["field"]; ok {
		msg += " for field " + f
	}
	return msg
}

func (t dictTranslator) base(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "parse_error":
			return "解析エラー"
		case "invalid_encoding":
			return "文字エンコーディングが不正です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "parse_error":
			return "not in known format"
		case "invalid_encoding":
			return "invalid character encoding"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
