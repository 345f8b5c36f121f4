// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewHandler returns a text [slog.Handler] writing to w that shows
// messages at or above [UserLevel] and colors the level names
// when w is a terminal that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(ApplyColor(out, lvl, lvl.String()))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one
// using [NewHandler] on [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("1") // red
	case level >= slog.LevelWarn:
		return out.Color("3") // yellow
	case level >= slog.LevelInfo:
		return out.Color("4") // blue
	default:
		return out.Color("8") // gray
	}
}

// ApplyColor returns s styled with the color of the given level
// for the given output. Outputs without color support get s unchanged.
func ApplyColor(out *termenv.Output, level slog.Level, s string) string {
	return out.String(s).Foreground(LevelColor(out, level)).String()
}

// PrintlnLevel prints the given message to w, colored by level,
// if the level is at or above [UserLevel].
func PrintlnLevel(w io.Writer, level slog.Level, msg string) {
	if level < UserLevel {
		return
	}
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, ApplyColor(out, level, msg))
}
