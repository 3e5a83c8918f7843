package datemask_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	datemask "github.com/reoring/datemask"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := datemask.Issues{
		{Path: datemask.PathMonth, Code: datemask.CodeMonthOutOfRange},
		{Path: datemask.PathDay, Code: datemask.CodeDayOutOfRange},
		{Path: datemask.PathYear, Code: datemask.CodeYearOutOfRange},
		{Path: datemask.PathRoot, Code: datemask.CodeNonNumericCharacter},
	}
	s := iss.Error()
	if !strings.HasPrefix(s, "month_out_of_range at /month") || !strings.Contains(s, "(total 4)") {
		t.Fatalf("unexpected summary %q", s)
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	err := fmt.Errorf("configure: %w", datemask.Issues{datemask.IssueAt(datemask.PathYear, datemask.CodeInvalidConfig)})
	iss, ok := datemask.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected wrapped issues, got %v", err)
	}
	var target datemask.Issues
	if !errors.As(err, &target) {
		t.Fatalf("errors.As failed")
	}
	if _, ok := datemask.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}

func TestIssueAt_LocalizedMessage(t *testing.T) {
	it := datemask.IssueAt(datemask.PathMonth, datemask.CodeMonthOutOfRange, "min", "1", "max", "12", "got", "13")
	if it.Message != "month must be between 1 and 12" {
		t.Fatalf("unexpected message %q", it.Message)
	}
	if it.Params["got"] != "13" {
		t.Fatalf("unexpected params %v", it.Params)
	}
}
