package datemask

import "strings"

// Separator divides the day, month and year fragments.
const Separator = '/'

// MaxDisplayLen is the length of "dd/mm/yyyy".
const MaxDisplayLen = 10

// divider is the position of a separator in the sanitized text.
type divider struct {
	at int
	ok bool
}

// sanitize drops everything a date can never contain: a leading separator
// empties the input, a third separator truncates it and any character other
// than an ASCII digit or the separator is removed.
func sanitize(raw string) (string, Issues) {
	var iss Issues
	if strings.HasPrefix(raw, string(Separator)) {
		return "", Issues{IssueAt(PathRoot, CodeInvalidSeparatorStart)}
	}
	if i := nthIndex(raw, Separator, 3); i >= 0 {
		raw = raw[:i]
		iss = append(iss, IssueAt(PathRoot, CodeTooManySeparators))
	}
	var b strings.Builder
	b.Grow(len(raw))
	stripped := false
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == Separator {
			b.WriteRune(r)
			continue
		}
		stripped = true
	}
	if stripped {
		iss = append(iss, IssueAt(PathRoot, CodeNonNumericCharacter))
	}
	s := b.String()
	if strings.HasPrefix(s, string(Separator)) {
		return "", append(iss, IssueAt(PathRoot, CodeInvalidSeparatorStart))
	}
	return s, iss
}

// nthIndex returns the byte index of the n-th occurrence of sep, or -1.
func nthIndex(s string, sep rune, n int) int {
	seen := 0
	for i, r := range s {
		if r != sep {
			continue
		}
		seen++
		if seen == n {
			return i
		}
	}
	return -1
}

// locate finds the first two separators of sanitized text.
func locate(s string) (d1, d2 divider) {
	i := strings.IndexRune(s, Separator)
	if i < 0 {
		return d1, d2
	}
	d1 = divider{at: i, ok: true}
	if j := strings.IndexRune(s[i+1:], Separator); j >= 0 {
		d2 = divider{at: i + 1 + j, ok: true}
	}
	return d1, d2
}
