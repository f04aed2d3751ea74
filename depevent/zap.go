// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package depevent

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a depcon event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger

	logLevel   zapcore.Level // default: zapcore.InfoLevel
	errorLevel *zapcore.Level
}

var _ Logger = (*ZapLogger)(nil)

// UseErrorLevel sets the level of error logs emitted by depcon to level.
func (l *ZapLogger) UseErrorLevel(level zapcore.Level) {
	l.errorLevel = &level
}

// UseLogLevel sets the level of non-error logs emitted by depcon to level.
func (l *ZapLogger) UseLogLevel(level zapcore.Level) {
	l.logLevel = level
}

func (l *ZapLogger) logEvent(msg string, fields ...zap.Field) {
	l.Logger.Log(l.logLevel, msg, fields...)
}

func (l *ZapLogger) logError(msg string, fields ...zap.Field) {
	lvl := zapcore.ErrorLevel
	if l.errorLevel != nil {
		lvl = *l.errorLevel
	}
	l.Logger.Log(lvl, msg, fields...)
}

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.logError("registration failed",
				zap.String("service", e.ServiceName),
				zap.String("provider", e.ProviderName),
				zap.Error(e.Err))
		} else {
			l.logEvent("registered",
				zap.String("service", e.ServiceName),
				zap.String("provider", e.ProviderName),
				maybeBool("overwrite", e.Overwrite),
				maybeBool("implicit", e.Implicit))
		}
	case *Resolved:
		if e.Err != nil {
			l.logError("resolve failed",
				zap.String("service", e.ServiceName),
				maybeString("provider", e.ProviderName),
				zap.Error(e.Err))
		} else {
			// Resolutions are frequent; keep them below the configured level.
			l.Logger.Debug("resolved",
				zap.String("service", e.ServiceName),
				zap.String("provider", e.ProviderName),
				zap.Bool("cached", e.Cached))
		}
	case *Constructed:
		if e.Err != nil {
			l.logError("construction failed",
				zap.String("provider", e.ProviderName),
				zap.String("service", e.ServiceName),
				zap.Error(e.Err))
		} else {
			l.logEvent("constructed",
				zap.String("provider", e.ProviderName),
				zap.String("service", e.ServiceName),
				zap.String("runtime", e.Runtime.String()))
		}
	case *HookApplied:
		if e.Err != nil {
			l.logError("hook failed",
				zap.String("hook", e.HookName),
				zap.String("caller", e.CallerName),
				zap.Error(e.Err))
		} else {
			l.logEvent("hook applied",
				zap.String("hook", e.HookName),
				zap.String("caller", e.CallerName))
		}
	case *Validated:
		if e.Err != nil {
			l.logError("validation failed",
				zap.Int("bindings", e.Bindings),
				zap.Error(e.Err))
		} else {
			l.logEvent("validated", zap.Int("bindings", e.Bindings))
		}
	}
}

func maybeString(key, value string) zap.Field {
	if len(value) == 0 {
		return zap.Skip()
	}
	return zap.String(key, value)
}

func maybeBool(key string, value bool) zap.Field {
	if !value {
		return zap.Skip()
	}
	return zap.Bool(key, true)
}
