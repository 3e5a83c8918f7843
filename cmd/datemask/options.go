package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	datemask "github.com/reoring/datemask"
	"github.com/reoring/datemask/i18n"
	"github.com/reoring/datemask/internal/config"
	"github.com/reoring/datemask/internal/format"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	format     string
	startYear  int
	endYear    int
	output     string
	lang       string
	verbosity  int
	logFile    string
}

func (o *rootOptions) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML configuration file")
	f.StringVar(&o.format, "format", "", "field order: mdy or dmy")
	f.IntVar(&o.startYear, "start-year", 0, "earliest accepted year")
	f.IntVar(&o.endYear, "end-year", 0, "latest accepted year")
	f.StringVarP(&o.output, "output", "o", "", "output: text, json or yaml")
	f.StringVar(&o.lang, "lang", "", "message language: en or ja")
	f.CountVarP(&o.verbosity, "verbose", "v", "log verbosity (repeat for more)")
	f.StringVar(&o.logFile, "log-file", "", "write logs to this file instead of stderr")
}

// session is everything a command needs to run one parsing session.
type session struct {
	id     string
	cfg    config.Config
	parser *datemask.Parser
	enc    format.Encoder
	log    commonlog.Logger
}

// setup resolves the configuration (file, environment, flags), configures
// logging and messages, and starts a parser session writing to w.
func (o *rootOptions) setup(cmd *cobra.Command, w io.Writer) (*session, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("start-year") {
		cfg.StartYear = o.startYear
	}
	if flags.Changed("end-year") {
		cfg.EndYear = o.endYear
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("lang") {
		cfg.Lang = o.lang
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	var path *string
	if o.logFile != "" {
		path = &o.logFile
	}
	commonlog.Configure(o.verbosity, path)
	i18n.SetLanguage(cfg.Lang)

	pc, err := cfg.Parser()
	if err != nil {
		return nil, err
	}
	s := &session{id: uuid.NewString(), cfg: cfg, log: commonlog.GetLogger("datemask.cli")}
	pc.OnIssue = func(it datemask.Issue) {
		s.log.Infof("session %s: %s at %s: %s", s.id, it.Code, it.Path, it.Message)
	}
	s.parser, err = datemask.New(pc)
	if err != nil {
		return nil, err
	}
	s.enc, err = format.New(cfg.Output, w)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("session %s: format=%s years=%d..%d output=%s", s.id, cfg.Format, cfg.StartYear, cfg.EndYear, cfg.Output)
	return s, nil
}

func (s *session) emitResult(input string, res datemask.Result) error {
	rec := format.FromResult(input, res)
	rec.Session = s.sessionField()
	return s.enc.Encode(rec)
}

func (s *session) emitFinalize(res datemask.FinalizeResult) error {
	rec := format.FromFinalize(res)
	rec.Session = s.sessionField()
	return s.enc.Encode(rec)
}

// sessionField is only worth printing in structured output.
func (s *session) sessionField() string {
	if s.cfg.Output == "text" {
		return ""
	}
	return s.id
}
