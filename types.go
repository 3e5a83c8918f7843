package datemask

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects the order of the day and month fields in the display.
type Format int

const (
	MDY Format = iota // month/day/year (default)
	DMY               // day/month/year
)

// String returns the lower-case name used by configuration files and flags.
func (f Format) String() string {
	switch f {
	case MDY:
		return "mdy"
	case DMY:
		return "dmy"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat accepts "mdy" or "dmy" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mdy":
		return MDY, nil
	case "dmy":
		return DMY, nil
	default:
		return MDY, fmt.Errorf("datemask: unknown format %q (want mdy or dmy)", s)
	}
}

func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Format) UnmarshalText(b []byte) error {
	v, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Year bounds accepted by Config.
const (
	DefaultStartYear = 1000
	DefaultEndYear   = 9999
)

// Config configures a parsing session. The zero value is the MDY format over
// [DefaultStartYear, DefaultEndYear].
type Config struct {
	Format    Format
	StartYear int // 0 means DefaultStartYear.
	EndYear   int // 0 means DefaultEndYear.
	// OnIssue, when set, receives every advisory issue reported by Process.
	OnIssue func(Issue)
}

func (c Config) withDefaults() Config {
	if c.StartYear == 0 {
		c.StartYear = DefaultStartYear
	}
	if c.EndYear == 0 {
		c.EndYear = DefaultEndYear
	}
	return c
}

// Validate checks the year bounds and the format.
func (c Config) Validate() error {
	c = c.withDefaults()
	var iss Issues
	if c.Format != MDY && c.Format != DMY {
		iss = append(iss, IssueAt(PathRoot, CodeInvalidConfig, "field", "format", "got", c.Format.String()))
	}
	if c.StartYear < DefaultStartYear || c.StartYear > DefaultEndYear {
		iss = append(iss, IssueAt(PathYear, CodeInvalidConfig, "field", "start_year", "got", strconv.Itoa(c.StartYear)))
	}
	if c.EndYear < DefaultStartYear || c.EndYear > DefaultEndYear {
		iss = append(iss, IssueAt(PathYear, CodeInvalidConfig, "field", "end_year", "got", strconv.Itoa(c.EndYear)))
	}
	if c.StartYear > c.EndYear {
		iss = append(iss, IssueAt(PathYear, CodeInvalidConfig, "field", "start_year", "got", strconv.Itoa(c.StartYear), "max", strconv.Itoa(c.EndYear)))
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// role is the semantic meaning of a field position.
type role int

const (
	roleDay role = iota
	roleMonth
)

// order returns the roles of the first and second fields.
func (f Format) order() (first, second role) {
	if f == DMY {
		return roleDay, roleMonth
	}
	return roleMonth, roleDay
}

func (r role) path() string {
	if r == roleDay {
		return PathDay
	}
	return PathMonth
}

func (r role) code() string {
	if r == roleDay {
		return CodeDayOutOfRange
	}
	return CodeMonthOutOfRange
}

// limit is the absolute maximum of the role.
func (r role) limit() int {
	if r == roleDay {
		return 31
	}
	return 12
}
