// Package telemetry provides statistics collection for rewrite passes.
//
// The telemetry system uses the context pattern for non-intrusive
// instrumentation. Collectors are passed through context and can be installed
// or omitted without changing function signatures; when absent, a no-op
// collector is returned and recording costs nothing.
//
// Example usage:
//
//	collector := telemetry.NewPassCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	edited, state, err := rewriter.Run(ctx, root, transform)
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

var collectorKey = contextKey{}

// Collector receives per-pass counters from a rewrite pass.
type Collector interface {
	// NodeVisited records one node handed to the transform.
	NodeVisited()

	// EditApplied records one visit whose transform changed the focus.
	EditApplied()

	// LineShift records the net line correction of a completed pass.
	LineShift(delta int)

	// Report outputs the collected statistics to a writer.
	Report(w io.Writer)
}

// WithCollector adds a collector to a context.
// The collector can be retrieved later with FromContext.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from context.
// If no collector is present, returns a no-op collector that does nothing.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
