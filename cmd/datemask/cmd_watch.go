package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	datemask "github.com/reoring/datemask"
	"github.com/reoring/datemask/internal/shell"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Treat a file as the field: re-process its contents on every write",
		Long: "Treat a file as the field: re-process its contents on every write.\n" +
			"The date is finalized after the configured debounce of inactivity and\n" +
			"once more on exit, as on focus loss.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.setup(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchFile(ctx, args[0], s)
		},
	}
	return cmd
}

// watchFile feeds the contents of path into a shell.Field until ctx is done.
// The parent directory is watched so that editors replacing the file are seen.
func watchFile(ctx context.Context, path string, s *session) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		// Best-effort watcher close; no actionable error handling path.
		_ = w.Close()
	}()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	field := shell.NewField(s.parser, shell.Options{
		Debounce:   s.cfg.Debounce,
		MessageTTL: s.cfg.MessageTTL,
		OnFinalize: func(res datemask.FinalizeResult) {
			if err := s.emitFinalize(res); err != nil {
				s.log.Errorf("session %s: encode: %v", s.id, err)
			}
		},
		OnMessage: func(msg string) {
			if msg != "" {
				s.log.Infof("session %s: %s", s.id, msg)
			}
		},
	})
	defer field.Close()

	var last string
	seen := false
	feed := func() error {
		data, err := os.ReadFile(abs)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		raw := strings.TrimRight(string(data), "\r\n")
		if seen && raw == last {
			return nil
		}
		last, seen = raw, true
		return s.emitResult(raw, field.Input(raw))
	}
	if err := feed(); err != nil {
		return err
	}
	s.log.Infof("session %s: watching %s", s.id, abs)

	name := filepath.Base(abs)
	for {
		select {
		case <-ctx.Done():
			field.Blur()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := feed(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warningf("session %s: watcher: %v", s.id, err)
		}
	}
}
