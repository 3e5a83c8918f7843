package codec

import (
	"context"
	"strconv"
	"strings"

	datemask "github.com/reoring/datemask"
)

// Committed returns a Codec that converts between the DD/MM/YYYY strings
// produced by Parser.Finalize and the three date components. Years are checked
// against the bounds of cfg.
func Committed(cfg datemask.Config) (datemask.Codec[string, datemask.Date], error) {
	p, err := datemask.New(cfg)
	if err != nil {
		return nil, err
	}
	return &committedCodec{cfg: p.Config()}, nil
}

type committedCodec struct {
	cfg datemask.Config
}

func (c *committedCodec) Decode(ctx context.Context, a string) (datemask.Date, error) {
	parts := strings.Split(a, string(datemask.Separator))
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 ||
		!digitsOnly(parts[0]) || !digitsOnly(parts[1]) || !digitsOnly(parts[2]) {
		return datemask.Date{}, datemask.Issues{datemask.IssueAt(datemask.PathRoot, datemask.CodeInvalidFormat, "got", a)}
	}
	d := datemask.Date{Day: strings.TrimPrefix(parts[0], "0"), Month: strings.TrimPrefix(parts[1], "0"), Year: parts[2]}
	if err := c.check(d); err != nil {
		return datemask.Date{}, err
	}
	return d, nil
}

func (c *committedCodec) Encode(ctx context.Context, b datemask.Date) (string, error) {
	if len(b.Day) > 2 || len(b.Month) > 2 || !digitsOnly(b.Day) || !digitsOnly(b.Month) || !digitsOnly(b.Year) {
		return "", datemask.Issues{datemask.IssueAt(datemask.PathRoot, datemask.CodeInvalidFormat)}
	}
	if err := c.check(b); err != nil {
		return "", err
	}
	return b.Committed(), nil
}

// check validates the components in day, month, year order and collects
// every failure.
func (c *committedCodec) check(d datemask.Date) error {
	var iss datemask.Issues
	day, _ := strconv.Atoi(d.Day)
	month, _ := strconv.Atoi(d.Month)
	year, _ := strconv.Atoi(d.Year)
	if month < 1 || month > 12 {
		iss = append(iss, datemask.IssueAt(datemask.PathMonth, datemask.CodeMonthOutOfRange, "min", "1", "max", "12", "got", d.Month))
	}
	yearOK := len(d.Year) == 4 && year >= c.cfg.StartYear && year <= c.cfg.EndYear
	if !yearOK {
		iss = append(iss, datemask.IssueAt(datemask.PathYear, datemask.CodeYearOutOfRange,
			"min", strconv.Itoa(c.cfg.StartYear), "max", strconv.Itoa(c.cfg.EndYear), "got", d.Year))
	}
	limit := datemask.DaysInMonth(month)
	switch {
	case day < 1 || day > limit:
		iss = append(iss, datemask.IssueAt(datemask.PathDay, datemask.CodeDayOutOfRange, "min", "1", "max", strconv.Itoa(limit), "got", d.Day))
	case day == 29 && month == 2 && yearOK && !datemask.IsLeapYear(year):
		iss = append(iss, datemask.IssueAt(datemask.PathYear, datemask.CodeInvalidLeapDay, "year", d.Year))
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
