package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "max"). Placeholders are written as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_separator_start": "a date cannot start with a separator",
		"too_many_separators":     "a date has at most two separators",
		"month_out_of_range":      "month must be between {min} and {max}",
		"day_out_of_range":        "day must be between {min} and {max}",
		"year_out_of_range":       "year must be between {min} and {max}",
		"invalid_leap_day":        "{year} is not a leap year; February has 28 days",
		"non_numeric_character":   "only digits and separators are allowed",
		"invalid_config":          "invalid configuration",
		"invalid_format":          "invalid date format",
	},
	"ja": {
		"invalid_separator_start": "日付を区切り文字で始めることはできません",
		"too_many_separators":     "区切り文字は2つまでです",
		"month_out_of_range":      "月は{min}から{max}の範囲で入力してください",
		"day_out_of_range":        "日は{min}から{max}の範囲で入力してください",
		"year_out_of_range":       "年は{min}から{max}の範囲で入力してください",
		"invalid_leap_day":        "{year}年はうるう年ではありません（2月は28日まで）",
		"non_numeric_character":   "数字と区切り文字のみ入力できます",
		"invalid_config":          "設定が不正です",
		"invalid_format":          "日付の形式が不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
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
