// Package mocks holds a no-op tracer for unit tests.
package mocks

import (
	"context"
	"nomad/infras/otel"
)

// noop satisfies both otel.Otel and otel.Scope; every scope it opens is itself.
type noop struct{}

var (
	_ otel.Otel  = noop{}
	_ otel.Scope = noop{}
)

func NewOtel() otel.Otel {
	return noop{}
}

func (n noop) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, n
}

func (noop) Shutdown(context.Context) error { return nil }

func (noop) AddEvent(string)              {}
func (noop) End()                         {}
func (noop) SetAttribute(string, any)     {}
func (noop) SetAttributes(map[string]any) {}
func (noop) TraceError(error)             {}
func (noop) TraceIfError(error)           {}
