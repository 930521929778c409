// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch calls a function whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/retopo/base/errors"
)

// File calls fun once at the start, and then again each time the given
// file is written, created, or renamed into place, until the context is
// done. Bursts of events within the debounce interval cause one call.
// The parent directory is watched rather than the file, so that editors
// that replace the file on save are handled. Errors returned by fun are
// logged and do not stop the watch.
func File(ctx context.Context, path string, debounce time.Duration, fun func() error) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	fpath, err = filepath.Abs(fpath)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(fpath)); err != nil {
		return fmt.Errorf("watch.File: %w", err)
	}

	run := func() {
		errors.Log(fun())
	}
	run()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fpath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("watch", "event", event.Op.String(), "file", path)
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch", "err", err)
		case <-timer.C:
			run()
		}
	}
}
