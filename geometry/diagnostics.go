// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Severity is the severity of a [Diagnostic].
type Severity int32

const (
	// Warning is a non-fatal problem; the output is still usable.
	Warning Severity = iota

	// Error means the output, or part of it, could not be produced.
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	}
	return fmt.Sprintf("Severity(%d)", int32(s))
}

// Level returns the slog level diagnostics of this severity are logged at.
func (s Severity) Level() slog.Level {
	if s == Error {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// Diagnostic is one message reported by a node.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Diagnostics accumulates the messages reported while executing a node.
// It is safe for concurrent use. Repeated identical messages, as reported
// by many instances hitting the same problem, are kept once.
type Diagnostics struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Add records a diagnostic and logs it.
func (ds *Diagnostics) Add(sev Severity, msg string) {
	d := Diagnostic{Severity: sev, Message: msg}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, it := range ds.items {
		if it == d {
			return
		}
	}
	ds.items = append(ds.items, d)
	slog.Log(context.Background(), sev.Level(), msg)
}

// Items returns a copy of the recorded diagnostics, in the order added.
func (ds *Diagnostics) Items() []Diagnostic {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return append([]Diagnostic(nil), ds.items...)
}

// Len returns the number of recorded diagnostics.
func (ds *Diagnostics) Len() int {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return len(ds.items)
}

// HasError returns whether any diagnostic has [Error] severity.
func (ds *Diagnostics) HasError() bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, d := range ds.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func (ds *Diagnostics) String() string {
	var b strings.Builder
	for _, d := range ds.Items() {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
