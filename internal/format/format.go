package format

import (
	"fmt"
	"io"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	datemask "github.com/reoring/datemask"
)

// Record is one observable event of a parsing session.
type Record struct {
	Session   string        `json:"session,omitempty" yaml:"session,omitempty"`
	Event     string        `json:"event" yaml:"event"` // "process" or "finalize"
	Input     string        `json:"input,omitempty" yaml:"input,omitempty"`
	Display   string        `json:"display" yaml:"display"`
	Complete  bool          `json:"complete" yaml:"complete"`
	Valid     bool          `json:"valid" yaml:"valid"`
	Committed string        `json:"committed,omitempty" yaml:"committed,omitempty"`
	Issues    []IssueRecord `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// IssueRecord is the serialized form of datemask.Issue.
type IssueRecord struct {
	Path    string            `json:"path" yaml:"path"`
	Code    string            `json:"code" yaml:"code"`
	Message string            `json:"message" yaml:"message"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// FromResult builds a process record.
func FromResult(input string, res datemask.Result) Record {
	r := Record{Event: "process", Input: input, Display: res.Display, Complete: res.Complete, Valid: res.Valid}
	for _, it := range res.Issues {
		r.Issues = append(r.Issues, IssueRecord{Path: it.Path, Code: it.Code, Message: it.Message, Params: it.Params})
	}
	return r
}

// FromFinalize builds a finalize record.
func FromFinalize(res datemask.FinalizeResult) Record {
	return Record{Event: "finalize", Display: res.Display, Complete: res.Valid, Valid: res.Valid, Committed: res.Committed}
}

// Encoder writes records.
type Encoder interface {
	Encode(r Record) error
}

// New returns the encoder named by output ("text", "json" or "yaml"). The
// returned encoder is safe for concurrent use.
func New(output string, w io.Writer) (Encoder, error) {
	var enc Encoder
	switch output {
	case "", "text":
		enc = &textEncoder{w: w}
	case "json":
		enc = NewJSONEncoder(w)
	case "yaml":
		enc = NewYAMLEncoder(w)
	default:
		return nil, fmt.Errorf("unknown output: %s", output)
	}
	return &lockedEncoder{enc: enc}, nil
}

type lockedEncoder struct {
	mu  sync.Mutex
	enc Encoder
}

func (l *lockedEncoder) Encode(r Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(r)
}

// NewJSONEncoder writes one JSON object per line.
func NewJSONEncoder(w io.Writer) Encoder {
	return &jsonEncoder{enc: json.NewEncoder(w)}
}

type jsonEncoder struct{ enc *json.Encoder }

func (e *jsonEncoder) Encode(r Record) error { return e.enc.Encode(r) }

// NewYAMLEncoder writes a YAML document per record.
func NewYAMLEncoder(w io.Writer) Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &yamlEncoder{enc: enc}
}

type yamlEncoder struct{ enc *yaml.Encoder }

func (e *yamlEncoder) Encode(r Record) error { return e.enc.Encode(r) }

type textEncoder struct{ w io.Writer }

func (e *textEncoder) Encode(r Record) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%-8s", r.Event)
	if r.Event == "process" {
		fmt.Fprintf(b, " %q ->", r.Input)
	}
	fmt.Fprintf(b, " %q", r.Display)
	switch {
	case r.Committed != "":
		fmt.Fprintf(b, " committed=%s", r.Committed)
	case r.Valid:
		b.WriteString(" valid")
	case r.Complete:
		b.WriteString(" complete")
	}
	for _, it := range r.Issues {
		fmt.Fprintf(b, " [%s: %s]", it.Code, it.Message)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(e.w, b.String())
	return err
}
