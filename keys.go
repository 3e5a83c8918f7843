package datemask

// Type appends one character to the current display and processes the
// result, the way a text field sees a keystroke at the end of its content.
func (p *Parser) Type(r rune) Result {
	return p.Process(p.state.Display + string(r))
}

// TypeString types s one character at a time and returns every intermediate
// result.
func (p *Parser) TypeString(s string) []Result {
	out := make([]Result, 0, len(s))
	for _, r := range s {
		out = append(out, p.Type(r))
	}
	return out
}

// Backspace removes the last character of the display and processes the
// remainder.
func (p *Parser) Backspace() Result {
	d := p.state.Display
	if d != "" {
		d = d[:len(d)-1]
	}
	return p.Process(d)
}

// SetValue replaces the field content from outside the keyboard (a model
// update or a paste). Rejected fragments fall back to nothing, since the
// previous value of the field does not describe what was being typed. The
// committed value is kept.
func (p *Parser) SetValue(raw string) Result {
	p.state = State{Committed: p.state.Committed}
	return p.Process(raw)
}
