// Package log exposes the logger used by the todo SDK.
//
// Any [Logger] implementation can be set in lib.Config.Logger, when none is
// set the SDK stays silent ([Noop]). Adapting an existing logger only needs
// the format methods to do something useful:
//
//	type slogLogger struct{}
//
//	func (slogLogger) Debugf(format string, args ...any)   { slog.Debug(fmt.Sprintf(format, args...)) }
//	func (slogLogger) Infof(format string, args ...any)    { slog.Info(fmt.Sprintf(format, args...)) }
//	func (slogLogger) Warningf(format string, args ...any) { slog.Warn(fmt.Sprintf(format, args...)) }
//	func (slogLogger) Errorf(format string, args ...any)   { slog.Error(fmt.Sprintf(format, args...)) }
//
// The value methods (WithValues, WithCtxValues, SetValuesOnCtx) can return
// the same logger.
package log

import "github.com/slok/todo/internal/log"

// Logger is the SDK logger.
type Logger = log.Logger

// Kv are the structured key-value pairs passed to [Logger.WithValues].
type Kv = log.Kv

// Noop discards everything.
var Noop = log.Noop
