// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Selected by the -logger flag, 0 and 1 both select debug.
var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func levelFor(n int) slog.Level {
	if n < 0 || n >= len(levels) {
		return slog.LevelWarn
	}
	return levels[n]
}

// PlainLogHandler writes "LEVEL: message" lines without time, followed by
// any attributes as key=value.
type PlainLogHandler struct {
	level slog.Leveler
	out   io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
}

func NewPlainLogHandler(out io.Writer, level slog.Leveler) *PlainLogHandler {
	return &PlainLogHandler{level: level, out: out, mu: &sync.Mutex{}}
}

func (h *PlainLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PlainLogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteString(": ")
	b.WriteString(r.Message)
	attr := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	}
	for _, a := range h.attrs {
		attr(a)
	}
	r.Attrs(attr)
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *PlainLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PlainLogHandler{
		level: h.level,
		out:   h.out,
		mu:    h.mu,
		attrs: append(slices.Clip(h.attrs), attrs...),
	}
}

// Groups are not used by the tool, attributes keep their plain keys.
func (h *PlainLogHandler) WithGroup(name string) slog.Handler {
	return h
}

func NewLogger(out io.Writer, level int) *slog.Logger {
	return slog.New(NewPlainLogHandler(out, levelFor(level)))
}
