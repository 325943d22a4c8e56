// line oriented slog handler
//
// Adapted from: https://github.com/jba/slog
// BSD 3-Clause License
// Copyright (c) 2022, Jonathan Amsterdam
package wslog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/indexsupply/wire/wctx"
)

// Writes records as: l=level msg=... k=v
// followed by any registered context values.
type Handler struct {
	ctxs      []func(context.Context) (string, any)
	level     slog.Leveler
	prefix    string
	preformat string
	mu        *sync.Mutex
	w         io.Writer
}

func New(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{w: w, level: level, mu: &sync.Mutex{}}
}

// Logs the wctx operation and input on every line
func NewWithContext(w io.Writer, level slog.Leveler) *Handler {
	h := New(w, level)
	h.RegisterContext(func(ctx context.Context) (string, any) {
		if op := wctx.Op(ctx); op != "" {
			return "op", op
		}
		return "", nil
	})
	h.RegisterContext(func(ctx context.Context) (string, any) {
		if in := wctx.Input(ctx); in != "" {
			return "input", in
		}
		return "", nil
	})
	return h
}

// f returns a key and value for the log line.
// An empty key omits the pair.
func (h *Handler) RegisterContext(f func(context.Context) (string, any)) {
	h.mu.Lock()
	h.ctxs = append(h.ctxs, f)
	h.mu.Unlock()
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) clone() *Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	return &Handler{
		ctxs:      append([]func(context.Context) (string, any){}, h.ctxs...),
		level:     h.level,
		prefix:    h.prefix,
		preformat: h.preformat,
		mu:        h.mu,
		w:         h.w,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	c := h.clone()
	c.prefix += name + "."
	return c
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	var buf []byte
	for _, a := range attrs {
		buf = appendAttr(buf, h.prefix, a)
	}
	c.preformat += string(buf)
	return c
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var buf []byte
	buf = fmt.Appendf(buf, "l=%s ", strings.ToLower(r.Level.String()))
	if len(r.Message) > 0 {
		buf = fmt.Appendf(buf, "msg=%q ", r.Message)
	}
	h.mu.Lock()
	ctxs := h.ctxs
	h.mu.Unlock()
	for _, f := range ctxs {
		k, v := f(ctx)
		if k == "" {
			continue
		}
		buf = fmt.Appendf(buf, "%s=%v ", k, v)
	}
	buf = append(buf, h.preformat...)
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)
		return true
	})
	buf = bytes.TrimSuffix(buf, []byte(" "))
	buf = append(buf, '\n')
	h.mu.Lock()
	_, err := h.w.Write(buf)
	h.mu.Unlock()
	return err
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() != slog.KindGroup {
		return fmt.Appendf(buf, "%s%s=%v ", prefix, a.Key, a.Value.Any())
	}
	if a.Key != "" {
		prefix += a.Key + "."
	}
	for _, ga := range a.Value.Group() {
		buf = appendAttr(buf, prefix, ga)
	}
	return buf
}
