// Package datemask provides:
//
// - An incremental parser for a single date text field (Parser.Process after
// every keystroke, Parser.Finalize on blur)
// - Component-by-component rejection of impossible months, days and years,
// including February 29 on non-leap years
// - A stable error model via Issues (JSON Pointer of the field, code, message)
// - Codecs over the three string components under codec/
//
// Design policy:
// - The root package is pure: no I/O, no timers, no goroutines. Step and
// Commit are the functional forms of Process and Finalize.
// - Debounced finalize and expiring messages belong to the host; see
// internal/shell for the binding used by the CLI under cmd/datemask.
//
// Typical usage:
//
//	p, err := datemask.New(datemask.Config{Format: datemask.DMY, StartYear: 1900, EndYear: 2100})
//	res := p.Process(field.Text())
//	field.SetText(res.Display)
//	...
//	if fin := p.Finalize(); fin.Valid {
//		save(fin.Committed) // always DD/MM/YYYY
//	}
package datemask
