// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package acidlistotel

import (
	"context"
	"time"

	"github.com/petenewcomb/acidlist"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// MetricsInsert wraps [acidlist.List.Insert], recording a count and a
// duration histogram under metricName via the global OpenTelemetry meter
// provider.
func MetricsInsert[T any](ctx context.Context, metricName string, l *acidlist.List[T], pos *acidlist.Iterator[T], value T) *acidlist.Iterator[T] {
	meter := otel.GetMeterProvider().Meter("acidlistotel")
	counter, _ := meter.Int64Counter(metricName + ".count")
	duration, _ := meter.Float64Histogram(metricName + ".duration")

	start := time.Now()
	counter.Add(ctx, 1)
	result := l.Insert(pos, value)
	duration.Record(ctx, time.Since(start).Seconds())
	return result
}

// MetricsErase wraps [acidlist.List.Erase], recording a count and a
// duration histogram under metricName via the global OpenTelemetry meter
// provider.
func MetricsErase[T any](ctx context.Context, metricName string, l *acidlist.List[T], pos *acidlist.Iterator[T]) *acidlist.Iterator[T] {
	meter := otel.GetMeterProvider().Meter("acidlistotel")
	counter, _ := meter.Int64Counter(metricName + ".count")
	duration, _ := meter.Float64Histogram(metricName + ".duration")

	start := time.Now()
	counter.Add(ctx, 1)
	result := l.Erase(pos)
	duration.Record(ctx, time.Since(start).Seconds())
	return result
}

// MetricsLen records the list's current length as an int64 observable
// gauge under metricName, useful for dashboards tracking list size over
// time without instrumenting every call site.
func MetricsLen[T any](metricName string, l *acidlist.List[T]) error {
	meter := otel.GetMeterProvider().Meter("acidlistotel")
	_, err := meter.Int64ObservableGauge(
		metricName+".len",
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(l.Len()))
			return nil
		}),
	)
	return err
}
