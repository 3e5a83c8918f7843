// Package shell binds a datemask.Parser to a live text field. It owns the
// timers the parser core deliberately lacks: the idle finalize and the expiry
// of advisory messages.
package shell

import (
	"sync"
	"time"

	"github.com/tliron/commonlog"

	datemask "github.com/reoring/datemask"
)

// Options configures a Field.
type Options struct {
	// Debounce is the idle time after the last input before Finalize runs.
	// Zero disables the idle finalize; Blur still finalizes.
	Debounce time.Duration
	// MessageTTL is how long an advisory message stays visible. Zero keeps
	// it until another issue replaces it.
	MessageTTL time.Duration
	// OnFinalize receives every finalize result, from Blur or the idle timer.
	OnFinalize func(datemask.FinalizeResult)
	// OnMessage receives the advisory message to show, and "" when it expires.
	// It runs with the Field locked and must not call back into it.
	OnMessage func(string)
}

// Field serializes access to a Parser from input events and timers.
type Field struct {
	mu      sync.Mutex
	parser  *datemask.Parser
	opts    Options
	idle    *time.Timer
	expiry  *time.Timer
	message string
	closed  bool
	log     commonlog.Logger
}

// NewField binds p. The Field takes ownership of p.
func NewField(p *datemask.Parser, opts Options) *Field {
	return &Field{parser: p, opts: opts, log: commonlog.GetLogger("datemask.shell")}
}

// Input processes a new raw value (keystroke or externally-set value) and
// restarts the idle finalize timer.
func (f *Field) Input(raw string) datemask.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := f.parser.Process(raw)
	f.log.Debugf("input %q -> %q (%s)", raw, res.Display, res.Code())
	if f.closed {
		return res
	}
	if len(res.Issues) > 0 {
		f.showLocked(res.Issues[0].Message)
	}
	if f.opts.Debounce > 0 {
		if f.idle == nil {
			f.idle = time.AfterFunc(f.opts.Debounce, f.flush)
		} else {
			f.idle.Reset(f.opts.Debounce)
		}
	}
	return res
}

// Blur finalizes immediately, as on focus loss.
func (f *Field) Blur() datemask.FinalizeResult {
	f.mu.Lock()
	if f.idle != nil {
		f.idle.Stop()
	}
	res := f.parser.Finalize()
	cb := f.opts.OnFinalize
	f.mu.Unlock()
	f.log.Debugf("blur -> %q committed=%q", res.Display, res.Committed)
	if cb != nil {
		cb(res)
	}
	return res
}

// Display returns the current display string.
func (f *Field) Display() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.parser.Display()
}

// Message returns the advisory message currently shown.
func (f *Field) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Close stops all timers. Pending callbacks are dropped.
func (f *Field) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.idle != nil {
		f.idle.Stop()
	}
	if f.expiry != nil {
		f.expiry.Stop()
	}
}

func (f *Field) flush() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	res := f.parser.Finalize()
	cb := f.opts.OnFinalize
	f.mu.Unlock()
	f.log.Debugf("idle finalize -> %q committed=%q", res.Display, res.Committed)
	if cb != nil {
		cb(res)
	}
}

// showLocked replaces the advisory message and schedules its expiry.
func (f *Field) showLocked(msg string) {
	f.message = msg
	if cb := f.opts.OnMessage; cb != nil {
		cb(msg)
	}
	if f.opts.MessageTTL <= 0 {
		return
	}
	if f.expiry == nil {
		f.expiry = time.AfterFunc(f.opts.MessageTTL, f.expire)
	} else {
		f.expiry.Reset(f.opts.MessageTTL)
	}
}

func (f *Field) expire() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.message == "" {
		return
	}
	f.message = ""
	if cb := f.opts.OnMessage; cb != nil {
		cb("")
	}
}
