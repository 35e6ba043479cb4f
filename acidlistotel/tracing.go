// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package acidlistotel provides optional OpenTelemetry tracing/metrics and
// zap structured logging instrumentation for acidlist operations. The core
// acidlist package stays free of any observability dependency; callers that
// want spans, metrics, or structured logs around their list mutations wrap
// the calls with the functions here instead.
package acidlistotel

import (
	"context"

	"github.com/petenewcomb/acidlist"
	"go.opentelemetry.io/otel"
)

// TracedInsert wraps [acidlist.List.Insert] with a span named after
// operationName, started on ctx and ended before this function returns.
func TracedInsert[T any](ctx context.Context, operationName string, l *acidlist.List[T], pos *acidlist.Iterator[T], value T) *acidlist.Iterator[T] {
	tracer := otel.Tracer("acidlistotel")
	_, span := tracer.Start(ctx, operationName)
	defer span.End()
	return l.Insert(pos, value)
}

// TracedErase wraps [acidlist.List.Erase] with a span named after
// operationName.
func TracedErase[T any](ctx context.Context, operationName string, l *acidlist.List[T], pos *acidlist.Iterator[T]) *acidlist.Iterator[T] {
	tracer := otel.Tracer("acidlistotel")
	_, span := tracer.Start(ctx, operationName)
	defer span.End()
	return l.Erase(pos)
}

// TracedAdvance wraps [acidlist.Iterator.Advance] with a span, useful for
// tracing a long traversal's wall-clock cost separately from the mutations
// racing against it.
func TracedAdvance[T any](ctx context.Context, operationName string, it *acidlist.Iterator[T]) bool {
	tracer := otel.Tracer("acidlistotel")
	_, span := tracer.Start(ctx, operationName)
	defer span.End()
	return it.Advance()
}
