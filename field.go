package datemask

// FieldStatus is the state of one date component.
type FieldStatus int

const (
	FieldUnset       FieldStatus = iota // Nothing typed, or not yet confirmed by a separator.
	FieldProvisional                    // Digits accepted so far.
	FieldRejected                       // A typed zero: present but not a valid value yet.
)

func (s FieldStatus) String() string {
	switch s {
	case FieldProvisional:
		return "provisional"
	case FieldRejected:
		return "rejected"
	default:
		return "unset"
	}
}

// Field is one of day, month or year. Digits are kept in minimal form for day
// and month ("5", not "05").
type Field struct {
	Status FieldStatus
	Digits string
}

// fieldOf classifies already validated digits.
func fieldOf(digits string) Field {
	if digits == "" {
		return Field{}
	}
	if numeric(digits) == 0 {
		return Field{Status: FieldRejected, Digits: digits}
	}
	return Field{Status: FieldProvisional, Digits: digits}
}

// Accepted reports whether the field holds a usable value.
func (f Field) Accepted() bool { return f.Status == FieldProvisional }

// Rejected reports whether the field holds the zero placeholder.
func (f Field) Rejected() bool { return f.Status == FieldRejected }

// Value returns the numeric value, 0 when unset.
func (f Field) Value() int { return numeric(f.Digits) }

func (f Field) String() string { return f.Digits }

// State is the per-session parser state. It is always the field
// decomposition of Display.
type State struct {
	Day   Field
	Month Field
	Year  Field
	// Display is the last string returned by Process.
	Display string
	// Committed is the last DD/MM/YYYY produced by a successful Finalize.
	Committed string
}

func (s *State) field(r role) Field {
	if r == roleDay {
		return s.Day
	}
	return s.Month
}

func (s *State) setField(r role, f Field) {
	if r == roleDay {
		s.Day = f
		return
	}
	s.Month = f
}

// Date returns the three components when the state holds a complete date.
func (s State) Date() (Date, bool) {
	if !s.Day.Accepted() || !s.Month.Accepted() || !s.Year.Accepted() || len(s.Year.Digits) != 4 {
		return Date{}, false
	}
	return Date{Day: s.Day.Digits, Month: s.Month.Digits, Year: s.Year.Digits}, true
}

// Date holds the three string components of a date.
type Date struct {
	Day   string `json:"day" yaml:"day"`
	Month string `json:"month" yaml:"month"`
	Year  string `json:"year" yaml:"year"`
}

// Committed renders the date as zero padded DD/MM/YYYY.
func (d Date) Committed() string {
	return pad2(d.Day) + string(Separator) + pad2(d.Month) + string(Separator) + d.Year
}

// Display renders the date in field order with minimal day and month digits.
func (d Date) Display(f Format) string {
	day, month := trimLeadingZeros(d.Day), trimLeadingZeros(d.Month)
	first, second := month, day
	if f == DMY {
		first, second = day, month
	}
	return first + string(Separator) + second + string(Separator) + d.Year
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
