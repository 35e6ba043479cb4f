// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package acidlistotel

import (
	"time"

	"github.com/petenewcomb/acidlist"
	"go.uber.org/zap"
)

// LoggedInsert wraps [acidlist.List.Insert] with a pair of debug-level log
// lines (start and completion, with duration) emitted through zap's global
// logger.
func LoggedInsert[T any](operationName string, l *acidlist.List[T], pos *acidlist.Iterator[T], value T) *acidlist.Iterator[T] {
	logger := zap.L()
	logger.Debug("starting insert",
		zap.String("operation", operationName),
		zap.String("component", "acidlistotel"))

	start := time.Now()
	result := l.Insert(pos, value)
	logger.Debug("insert completed",
		zap.String("operation", operationName),
		zap.String("component", "acidlistotel"),
		zap.Duration("duration", time.Since(start)))
	return result
}

// LoggedErase wraps [acidlist.List.Erase] with a pair of debug-level log
// lines (start and completion, with duration) emitted through zap's global
// logger. Erase is idempotent (see [acidlist.List.Erase]), so a log line does
// not by itself indicate that an element was actually removed.
func LoggedErase[T any](operationName string, l *acidlist.List[T], pos *acidlist.Iterator[T]) *acidlist.Iterator[T] {
	logger := zap.L()
	logger.Debug("starting erase",
		zap.String("operation", operationName),
		zap.String("component", "acidlistotel"))

	start := time.Now()
	result := l.Erase(pos)
	logger.Debug("erase completed",
		zap.String("operation", operationName),
		zap.String("component", "acidlistotel"),
		zap.Duration("duration", time.Since(start)))
	return result
}
