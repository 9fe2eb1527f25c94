package profiler

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the profiler, so request-scoped
// code can time regions without threading the handle explicitly.
func NewContext(ctx context.Context, p *Profiler) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the profiler carried by ctx, or nil.
func FromContext(ctx context.Context) *Profiler {
	p, _ := ctx.Value(ctxKey{}).(*Profiler)
	return p
}

// Enter opens a nested entry on the context's profiler. A context with
// no profiler is a no-op, matching the facade's no-session behavior.
func Enter(ctx context.Context, label string) {
	if p := FromContext(ctx); p != nil {
		p.Enter(label)
	}
}

// Release closes the current entry on the context's profiler, if any.
func Release(ctx context.Context) {
	if p := FromContext(ctx); p != nil {
		p.Release()
	}
}
