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

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	lg.Debug("hidden")
	lg.Info("shown", "rings", 4)
	lg.Warn("warned")

	s := buf.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "level=INFO msg=shown rings=4")
	assert.Contains(t, s, "level=WARN msg=warned")
	assert.NotContains(t, s, "time=")
}

func TestPrintlnLevel(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	UserLevel = slog.LevelWarn

	var buf bytes.Buffer
	PrintlnLevel(&buf, slog.LevelInfo, "info")
	PrintlnLevel(&buf, slog.LevelError, "error")
	assert.Equal(t, "error\n", buf.String())
}
