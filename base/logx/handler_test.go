// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	lg.Debug("this is debug")
	assert.Empty(t, buf.String())

	lg.Info("this is info", "vertex", 3)
	assert.Equal(t, "INFO this is info vertex=3\n", buf.String())
	buf.Reset()

	lg.With("mesh", "cube").WithGroup("topo").Warn("skipped", "edge", 7)
	assert.Equal(t, "WARN skipped mesh=cube topo.edge=7\n", buf.String())
}

func TestHandlerUserLevel(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, nil))
	UserLevel = slog.LevelError
	lg.Warn("hidden")
	assert.Empty(t, buf.String())
	UserLevel = slog.LevelDebug
	lg.Debug("shown")
	assert.Equal(t, "DEBUG shown\n", buf.String())
}
