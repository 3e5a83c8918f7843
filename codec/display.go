package codec

import (
	"context"

	datemask "github.com/reoring/datemask"
)

// Display returns a Codec between the field text shown by a Parser with cfg
// and the three date components. Both directions run the text through a fresh
// Parser, so an encoded value is exactly what the field would show after the
// user typed it, and decoding fails on any text the field would correct.
func Display(cfg datemask.Config) (datemask.Codec[string, datemask.Date], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &displayCodec{cfg: cfg}, nil
}

type displayCodec struct {
	cfg datemask.Config
}

func (c *displayCodec) parser() *datemask.Parser {
	cfg := c.cfg
	cfg.OnIssue = nil
	return datemask.MustNew(cfg)
}

func (c *displayCodec) Decode(ctx context.Context, a string) (datemask.Date, error) {
	p := c.parser()
	res := p.Process(a)
	if len(res.Issues) > 0 {
		return datemask.Date{}, res.Issues
	}
	d, ok := p.State().Date()
	if !ok || !res.Valid {
		return datemask.Date{}, datemask.Issues{datemask.IssueAt(datemask.PathRoot, datemask.CodeInvalidFormat, "got", a)}
	}
	return d, nil
}

func (c *displayCodec) Encode(ctx context.Context, b datemask.Date) (string, error) {
	text := b.Display(c.cfg.Format)
	p := c.parser()
	res := p.Process(text)
	if len(res.Issues) > 0 {
		return "", res.Issues
	}
	if !res.Valid || res.Display != text {
		return "", datemask.Issues{datemask.IssueAt(datemask.PathRoot, datemask.CodeInvalidFormat, "got", text)}
	}
	return res.Display, nil
}
