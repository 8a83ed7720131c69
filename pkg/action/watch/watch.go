package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/cmmoran/luastubgen/pkg/action/generate"
	"github.com/cmmoran/luastubgen/pkg/config"
)

// Handler receives the outcome of every (re)generation.
type Handler func(res generate.Result, err error)

// Run generates every stub once and then regenerates a stub whenever its
// manifest is written, until ctx is done. Existing stubs are always
// replaced. Directories are watched rather than files so that editors which
// save by renaming a temporary file are still seen.
func Run(ctx context.Context, opts *config.Options, onResult Handler) error {
	if err := generate.CheckOutDir(opts.OutDir); err != nil {
		return err
	}
	regen := *opts
	regen.Override = true

	watched := make(map[string]string, len(opts.Manifests))
	dirs := make(map[string]struct{})
	for _, m := range opts.Manifests {
		abs, err := filepath.Abs(m)
		if err != nil {
			return errors.Wrapf(err, "resolve manifest path %s", m)
		}
		watched[abs] = m
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer func() { _ = w.Close() }()
	for d := range dirs {
		if err = w.Add(d); err != nil {
			return errors.Wrapf(err, "failed to watch directory %s", d)
		}
	}

	run := func(path string) {
		res, err := generate.One(path, &regen)
		if onResult != nil {
			onResult(res, err)
		}
	}
	for _, m := range opts.Manifests {
		run(m)
	}

	due := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()
	schedule := func(path string) {
		if t, ok := timers[path]; ok {
			t.Stop()
		}
		timers[path] = time.AfterFunc(regen.Debounce, func() {
			select {
			case due <- path:
			case <-ctx.Done():
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-due:
			run(path)
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			path, ok := watched[abs]
			if !ok {
				continue
			}
			slog.With("manifest", path, "op", event.Op.String()).Debug("manifest changed")
			schedule(path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.With("error", err).Warn("watcher error")
		}
	}
}
