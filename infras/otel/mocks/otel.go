package mocks

import (
	"context"
	"frontdesk/infras/otel"
	"sync"
)

// Otel hands out recording scopes so services and repositories can be tested without a collector.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{Name: spanName}
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the first scope opened with spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, scope := range o.scopes {
		if scope.Name == spanName {
			return scope
		}
	}

	return nil
}

func NewOtel() otel.Otel {
	return &Otel{}
}

// NewRecordingOtel is NewOtel with the concrete type, for tests that inspect the scopes.
func NewRecordingOtel() *Otel {
	return &Otel{}
}
