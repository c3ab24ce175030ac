package mocks

import (
	"context"

	"hotel/infras/otel"
)

// Otel hands every span the same Scope, so one test can observe all of them.
type Otel struct {
	Scope *Scope
}

func (o *Otel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, o.Scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return NewRecordingOtel()
}

func NewRecordingOtel() *Otel {
	return &Otel{Scope: &Scope{}}
}
