package datemask

import "context"

// Parser is an input session: it owns one State and turns every new raw
// field value into a corrected display. A Parser is not safe for concurrent
// use.
type Parser struct {
	cfg   Config
	state State
}

// New validates cfg and starts an empty session.
func New(cfg Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg.withDefaults()}, nil
}

// MustNew is New for static configurations; it panics on an invalid cfg.
func MustNew(cfg Config) *Parser {
	p, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Config returns the effective configuration (defaults applied).
func (p *Parser) Config() Config { return p.cfg }

// Process consumes the whole current field content and returns the display
// to show. It never fails: rejected fragments are reverted to the last
// accepted value and reported as advisory Issues.
func (p *Parser) Process(raw string) Result {
	next, res := Step(p.cfg, p.state, raw)
	p.state = next
	if p.cfg.OnIssue != nil {
		for _, it := range res.Issues {
			p.cfg.OnIssue(it)
		}
	}
	return res
}

// Finalize is called when the field loses focus (or after an idle period
// chosen by the caller). An incomplete or out-of-range date clears the
// session; a valid one is committed as DD/MM/YYYY.
func (p *Parser) Finalize() FinalizeResult {
	next, res := Commit(p.cfg, p.state)
	p.state = next
	return res
}

// State returns a copy of the session state.
func (p *Parser) State() State { return p.state }

// Display returns the last display string.
func (p *Parser) Display() string { return p.state.Display }

// Committed returns the last committed DD/MM/YYYY value.
func (p *Parser) Committed() (string, bool) {
	return p.state.Committed, p.state.Committed != ""
}

// Reset discards the session state, including the committed value.
func (p *Parser) Reset() { p.state = State{} }

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // A -> B, validating B.
	Encode(ctx context.Context, b B) (A, error) // validates B, then B -> A.
}

// Decode is a convenience wrapper over Codec.Decode.
func Decode[A, B any](ctx context.Context, c Codec[A, B], a A) (B, error) {
	return c.Decode(ctx, a)
}

// Encode is a convenience wrapper over Codec.Encode.
func Encode[A, B any](ctx context.Context, c Codec[A, B], b B) (A, error) {
	return c.Encode(ctx, b)
}
