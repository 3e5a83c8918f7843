package codec_test

import (
	"context"
	"testing"

	datemask "github.com/reoring/datemask"
	"github.com/reoring/datemask/codec"
)

func TestCommitted_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	c, err := codec.Committed(datemask.Config{})
	if err != nil {
		t.Fatalf("committed codec: %v", err)
	}

	d, err := c.Decode(ctx, "15/03/2024")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if d != (datemask.Date{Day: "15", Month: "3", Year: "2024"}) {
		t.Fatalf("unexpected date: %+v", d)
	}

	s, err := c.Encode(ctx, d)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if s != "15/03/2024" {
		t.Fatalf("roundtrip mismatch: %s", s)
	}
}

func TestCommitted_DecodeRejects(t *testing.T) {
	ctx := context.Background()
	c, err := codec.Committed(datemask.Config{StartYear: 2000, EndYear: 2030})
	if err != nil {
		t.Fatalf("committed codec: %v", err)
	}
	cases := map[string]string{
		"3/15/2024":  datemask.CodeInvalidFormat,
		"15-03-2024": datemask.CodeInvalidFormat,
		"15/13/2024": datemask.CodeMonthOutOfRange,
		"31/04/2024": datemask.CodeDayOutOfRange,
		"29/02/2023": datemask.CodeInvalidLeapDay,
		"01/01/1999": datemask.CodeYearOutOfRange,
		"00/01/2024": datemask.CodeDayOutOfRange,
	}
	for in, code := range cases {
		_, err := c.Decode(ctx, in)
		iss, ok := datemask.AsIssues(err)
		if !ok || !iss.Has(code) {
			t.Fatalf("%s: expected %s, got %v", in, code, err)
		}
	}
	if _, err := c.Decode(ctx, "29/02/2024"); err != nil {
		t.Fatalf("leap day on leap year: %v", err)
	}
}

func TestCommitted_EncodeRejectsMalformed(t *testing.T) {
	c, _ := codec.Committed(datemask.Config{})
	if _, err := c.Encode(context.Background(), datemask.Date{Day: "005", Month: "3", Year: "2024"}); err == nil {
		t.Fatalf("expected invalid_format for a three digit day")
	}
	if _, err := c.Encode(context.Background(), datemask.Date{Day: "5", Month: "", Year: "2024"}); err == nil {
		t.Fatalf("expected invalid_format for a missing month")
	}
}

func TestCommitted_InvalidConfig(t *testing.T) {
	if _, err := codec.Committed(datemask.Config{StartYear: 3000, EndYear: 2000}); err == nil {
		t.Fatalf("expected config error")
	}
	if _, err := codec.Display(datemask.Config{EndYear: 12345}); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestDisplay_EncodeFollowsFormat(t *testing.T) {
	ctx := context.Background()
	d := datemask.Date{Day: "05", Month: "03", Year: "2024"}
	for format, want := range map[datemask.Format]string{datemask.MDY: "3/5/2024", datemask.DMY: "5/3/2024"} {
		c, err := codec.Display(datemask.Config{Format: format})
		if err != nil {
			t.Fatalf("display codec: %v", err)
		}
		got, err := c.Encode(ctx, d)
		if err != nil || got != want {
			t.Fatalf("%v: got %q, %v", format, got, err)
		}
		back, err := c.Decode(ctx, got)
		if err != nil || back != (datemask.Date{Day: "5", Month: "3", Year: "2024"}) {
			t.Fatalf("%v: decode %+v, %v", format, back, err)
		}
	}
}

func TestDisplay_Rejects(t *testing.T) {
	ctx := context.Background()
	c, _ := codec.Display(datemask.Config{})
	if _, err := c.Encode(ctx, datemask.Date{Day: "31", Month: "4", Year: "2024"}); err == nil {
		t.Fatalf("expected day_out_of_range")
	}
	if _, err := c.Decode(ctx, "2/29/2019"); err == nil {
		t.Fatalf("expected invalid_leap_day")
	}
	if _, err := c.Decode(ctx, "2/28"); err == nil {
		t.Fatalf("expected incomplete date to fail")
	}
}

func TestDecodeEncodeHelpers(t *testing.T) {
	ctx := context.Background()
	c, _ := codec.Committed(datemask.Config{})
	d, err := datemask.Decode(ctx, c, "01/02/2003")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s, err := datemask.Encode(ctx, c, d)
	if err != nil || s != "01/02/2003" {
		t.Fatalf("encode: %q %v", s, err)
	}
}
