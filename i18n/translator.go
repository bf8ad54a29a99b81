package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "not_container":
			return "オブジェクトではありません"
		case "resolve_failed":
			return "検証に失敗しました"
		case "one_of":
			return "どの候補にも一致しません"
		case "too_short":
			return "短すぎます"
		case "duplicate_key":
			return "キーが重複しています"
		case "truncated":
			return "打ち切られました"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "not_container":
			return "not an object"
		case "resolve_failed":
			return "resolve failed"
		case "one_of":
			return "no alternative matched"
		case "too_short":
			return "too short"
		case "duplicate_key":
			return "duplicate key"
		case "truncated":
			return "truncated"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

// NewDict returns the built-in Translator for the given language ("en", "ja").
func NewDict(lang string) Translator { return dictTranslator{lang: lang} }

var defaultTranslator Translator = dictTranslator{lang: "en"}

// SetDefault replaces the process-wide Translator; nil values are ignored.
func SetDefault(t Translator) {
	if t == nil {
		return
	}
	defaultTranslator = t
}

// SetLanguage switches the default Translator to the built-in dictionary for
// the given language.
func SetLanguage(lang string) { defaultTranslator = dictTranslator{lang: lang} }

// T resolves a message for the code using the default Translator.
func T(code string, data map[string]string) string {
	return defaultTranslator.Message(code, data)
}
