package datemask_test

import (
	"testing"

	datemask "github.com/reoring/datemask"
)

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		1600: true, 1700: false, 1900: false, 2000: true,
		2019: false, 2020: true, 2024: true, 2100: false, 2400: true,
	}
	for year, want := range cases {
		if got := datemask.IsLeapYear(year); got != want {
			t.Fatalf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	want := []int{29, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for month, days := range want {
		if got := datemask.DaysInMonth(month); got != days {
			t.Fatalf("DaysInMonth(%d) = %d, want %d", month, got, days)
		}
	}
	if got := datemask.DaysInMonth(13); got != 29 {
		t.Fatalf("unknown month should default to 29, got %d", got)
	}
}

func TestDate_Rendering(t *testing.T) {
	d := datemask.Date{Day: "5", Month: "03", Year: "2024"}
	if got := d.Committed(); got != "05/03/2024" {
		t.Fatalf("committed: %q", got)
	}
	if got := d.Display(datemask.MDY); got != "3/5/2024" {
		t.Fatalf("mdy display: %q", got)
	}
	if got := d.Display(datemask.DMY); got != "5/3/2024" {
		t.Fatalf("dmy display: %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]datemask.Format{"": datemask.MDY, "mdy": datemask.MDY, " DMY ": datemask.DMY} {
		got, err := datemask.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := datemask.ParseFormat("ymd"); err == nil {
		t.Fatalf("expected error for ymd")
	}
	var f datemask.Format
	if err := f.UnmarshalText([]byte("dmy")); err != nil || f != datemask.DMY {
		t.Fatalf("UnmarshalText: %v %v", f, err)
	}
	if b, _ := datemask.DMY.MarshalText(); string(b) != "dmy" {
		t.Fatalf("MarshalText: %s", b)
	}
}
