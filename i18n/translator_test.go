package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("month_out_of_range", nil); msg == "month_out_of_range" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	defer SetLanguage("en")
	if msg := T("month_out_of_range", nil); msg == "month must be between {min} and {max}" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("year_out_of_range", map[string]string{"min": "2000", "max": "2030"})
	if got != "year must be between 2000 and 2030" {
		t.Fatalf("unexpected message: %q", got)
	}
	got = T("invalid_leap_day", map[string]string{"year": "2019"})
	if got != "2019 is not a leap year; February has 28 days" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code passthrough, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("day_out_of_range", nil); got != "X:day_out_of_range" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("day_out_of_range", nil); got == "X:day_out_of_range" {
		t.Fatalf("nil translator should reset to default")
	}
}
