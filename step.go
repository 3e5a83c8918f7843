package datemask

import "strconv"

// Result is the outcome of processing one raw field value.
type Result struct {
	Display  string
	Complete bool // day, month and a 4-digit year are accepted
	Valid    bool // Complete, in range and an existing calendar day
	Issues   Issues
}

// Code returns the first issue code, or "" when the input was accepted as is.
func (r Result) Code() string {
	if len(r.Issues) == 0 {
		return ""
	}
	return r.Issues[0].Code
}

// FinalizeResult is the outcome of Finalize.
type FinalizeResult struct {
	Display   string
	Committed string // DD/MM/YYYY, "" when nothing was committed
	Valid     bool
}

// Step is the pure form of Parser.Process: it returns the state that follows
// prev once raw is the new field content.
func Step(cfg Config, prev State, raw string) (State, Result) {
	cfg = cfg.withDefaults()
	s, iss := sanitize(raw)
	d1, d2 := locate(s)
	first, second := cfg.Format.order()

	next := State{Committed: prev.Committed}

	cand := s
	if d1.ok {
		cand = s[:d1.at]
	}
	digits, more := checkFirst(first, cand, prev.field(first))
	iss = append(iss, more...)
	display := digits
	next.setField(first, fieldOf(digits))

	if digits != "" && d1.ok {
		display += string(Separator)
		end := len(s)
		if d2.ok {
			end = d2.at
		}
		own := next.field(first)
		digits, more = checkSecond(second, s[d1.at+1:end], own, prev.field(second))
		iss = append(iss, more...)
		next.setField(second, fieldOf(digits))
		display += digits

		if digits != "" && d2.ok {
			display += string(Separator)
			digits, more = checkYear(cfg, s[d2.at+1:], next.Day, next.Month, prev.Year)
			iss = append(iss, more...)
			next.Year = fieldOf(digits)
			display += digits
		}
	}
	if !d1.ok {
		// Held for display only until a separator confirms it.
		next.setField(first, Field{})
	}
	if len(display) > MaxDisplayLen {
		display = display[:MaxDisplayLen]
	}
	next.Display = display
	return next, evaluate(cfg, next, iss)
}

// checkFirst validates the field before the first separator against the
// absolute maximum of its role.
func checkFirst(r role, cand string, prev Field) (string, Issues) {
	if numeric(cand) <= r.limit() {
		return trimLeadingZeros(cand), nil
	}
	return prev.Digits, Issues{outOfRange(r, cand, 1, r.limit())}
}

// checkSecond validates the field between the separators. It depends on the
// already accepted first field.
func checkSecond(r role, cand string, other Field, prev Field) (string, Issues) {
	if other.Rejected() {
		if cand == "" {
			return "", nil
		}
		o := roleMonth
		if r == roleMonth {
			o = roleDay
		}
		return "", Issues{outOfRange(o, other.Digits, 1, o.limit())}
	}
	if cand == "" {
		return "", nil
	}
	limit := r.limit()
	if r == roleDay {
		limit = DaysInMonth(other.Value())
	}
	fits := func(d string) bool {
		v := numeric(d)
		if v > limit {
			return false
		}
		// A month that cannot hold the already typed day.
		if r == roleMonth && v != 0 && other.Value() > DaysInMonth(v) {
			return false
		}
		return true
	}
	if fits(cand) {
		return trimLeadingZeros(cand), nil
	}
	iss := Issues{outOfRange(r, cand, 1, limit)}
	if prev.Digits != "" && fits(prev.Digits) {
		return prev.Digits, iss
	}
	return "", iss
}

// checkYear validates the text after the second separator.
func checkYear(cfg Config, cand string, day, month Field, prev Field) (string, Issues) {
	if cand == "" {
		return "", nil
	}
	if day.Rejected() || month.Rejected() {
		// A zero day or month freezes the year at its previous value.
		if cand == prev.Digits {
			return prev.Digits, nil
		}
		r, f := roleDay, day
		if month.Rejected() {
			r, f = roleMonth, month
		}
		return prev.Digits, Issues{outOfRange(r, f.Digits, 1, r.limit())}
	}
	digits, iss := yearIssue(cfg, cand, day, month)
	if iss == nil {
		return digits, nil
	}
	if iss.Code == CodeInvalidLeapDay {
		// Keep typing the last digit.
		return digits, Issues{*iss}
	}
	return fallbackYear(cfg, prev, day, month), Issues{*iss}
}

// yearIssue returns cand unchanged when it is acceptable. A leap-day failure
// returns cand without its last digit.
func yearIssue(cfg Config, cand string, day, month Field) (string, *Issue) {
	if cand[0] == '0' {
		it := outOfRange(roleYear, cand, cfg.StartYear, cfg.EndYear)
		return "", &it
	}
	v := numeric(cand)
	if len(cand) >= 4 && (v < cfg.StartYear || v > cfg.EndYear) {
		it := outOfRange(roleYear, cand, cfg.StartYear, cfg.EndYear)
		return "", &it
	}
	if len(cand) == 4 && day.Value() == 29 && month.Value() == 2 && !IsLeapYear(v) {
		it := IssueAt(PathYear, CodeInvalidLeapDay, "year", cand)
		return cand[:3], &it
	}
	return cand, nil
}

// fallbackYear restores the previous year when it still holds for the
// current day and month.
func fallbackYear(cfg Config, prev, day, month Field) string {
	if prev.Digits == "" {
		return ""
	}
	if _, it := yearIssue(cfg, prev.Digits, day, month); it != nil {
		return ""
	}
	return prev.Digits
}

// roleYear only names the year for outOfRange.
const roleYear role = -1

func outOfRange(r role, got string, lo, hi int) Issue {
	path, code := PathYear, CodeYearOutOfRange
	if r != roleYear {
		path, code = r.path(), r.code()
	}
	return IssueAt(path, code, "min", strconv.Itoa(lo), "max", strconv.Itoa(hi), "got", got)
}

func evaluate(cfg Config, st State, iss Issues) Result {
	res := Result{Display: st.Display, Issues: iss}
	d, ok := st.Date()
	if !ok {
		return res
	}
	res.Complete = true
	res.Valid = validDate(cfg, d)
	return res
}

// validDate checks the components against the calendar and the year range.
func validDate(cfg Config, d Date) bool {
	day, month, year := numeric(d.Day), numeric(d.Month), numeric(d.Year)
	if len(d.Year) != 4 || year < cfg.StartYear || year > cfg.EndYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysIn(month, year)
}

// Commit is the pure form of Parser.Finalize.
func Commit(cfg Config, st State) (State, FinalizeResult) {
	cfg = cfg.withDefaults()
	d := Date{Day: st.Day.Digits, Month: st.Month.Digits, Year: st.Year.Digits}
	if !st.Day.Accepted() || !st.Month.Accepted() || !validDate(cfg, d) {
		return State{}, FinalizeResult{}
	}
	st.Committed = d.Committed()
	return st, FinalizeResult{Display: st.Display, Committed: st.Committed, Valid: true}
}
