package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler duplicates each record to every wrapped handler. It pairs the
// stdout JSON handler with the database-backed error log; a failing target
// does not stop delivery to the others.
type MultiHandler struct {
	targets []slog.Handler
}

func NewMultiHandler(targets ...slog.Handler) *MultiHandler {
	return &MultiHandler{targets: targets}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.targets {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range m.targets {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, h := range m.targets {
		targets[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{targets: targets}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	targets := make([]slog.Handler, len(m.targets))
	for i, h := range m.targets {
		targets[i] = h.WithGroup(name)
	}
	return &MultiHandler{targets: targets}
}
