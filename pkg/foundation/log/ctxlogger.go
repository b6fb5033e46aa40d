// Copyright © 2022 Meroxa, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.ErrorStackMarshaler = cerrors.GetStackTrace
}

// CtxLogger wraps a zerolog.Logger. Every event is started with a context, so
// hooks registered on the logger can read values stored in it (e.g. the ID of
// the flow file being processed).
type CtxLogger struct {
	zerolog.Logger
	component string
}

// New creates a new CtxLogger with the supplied zerolog.Logger.
func New(logger zerolog.Logger) CtxLogger {
	return CtxLogger{Logger: logger}
}

// Nop returns a disabled logger.
func Nop() CtxLogger {
	return CtxLogger{Logger: zerolog.Nop()}
}

// Test returns a logger that writes to t.
func Test(t testing.TB) CtxLogger {
	return CtxLogger{Logger: zerolog.New(zerolog.NewTestWriter(t))}
}

// InitLogger returns a logger with the wanted level and format. Output goes
// to stderr, stdout is reserved for flow files.
func InitLogger(level zerolog.Level, f Format, hooks ...zerolog.Hook) CtxLogger {
	logger := zerolog.New(GetWriter(f)).
		With().
		Timestamp().
		Stack().
		Logger().
		Level(level)
	for _, h := range hooks {
		logger = logger.Hook(h)
	}
	return New(logger)
}

// WithComponent returns a logger that adds the component field to every
// event. An empty component removes the field.
func (l CtxLogger) WithComponent(component string) CtxLogger {
	l.component = component
	return l
}

func (l CtxLogger) Component() string {
	return l.component
}

// ZerologWithComponent returns the underlying zerolog.Logger with the
// component field attached. It is handed to code that logs through zerolog
// directly, like processors built with the processor SDK.
func (l CtxLogger) ZerologWithComponent() zerolog.Logger {
	if l.component == "" {
		return l.Logger
	}
	return l.Logger.With().Str(ComponentField, l.component).Logger()
}

// Trace starts a new message with trace level. Call Msg on the returned event
// to send it.
func (l CtxLogger) Trace(ctx context.Context) *zerolog.Event {
	return l.attachComponent(l.Logger.Trace().Ctx(ctx))
}

// Debug starts a new message with debug level. Call Msg on the returned event
// to send it.
func (l CtxLogger) Debug(ctx context.Context) *zerolog.Event {
	return l.attachComponent(l.Logger.Debug().Ctx(ctx))
}

// Info starts a new message with info level. Call Msg on the returned event
// to send it.
func (l CtxLogger) Info(ctx context.Context) *zerolog.Event {
	return l.attachComponent(l.Logger.Info().Ctx(ctx))
}

// Warn starts a new message with warn level. Call Msg on the returned event
// to send it.
func (l CtxLogger) Warn(ctx context.Context) *zerolog.Event {
	return l.attachComponent(l.Logger.Warn().Ctx(ctx))
}

// Error starts a new message with error level. Call Msg on the returned event
// to send it.
func (l CtxLogger) Error(ctx context.Context) *zerolog.Event {
	return l.attachComponent(l.Logger.Error().Ctx(ctx))
}

// Err starts a new message with error level and err attached, or with info
// level if err is nil.
func (l CtxLogger) Err(ctx context.Context, err error) *zerolog.Event {
	return l.attachComponent(l.Logger.Err(err).Ctx(ctx))
}

// Outcome starts a message reporting the outcome of an operation. A nil err
// produces a debug message, otherwise the message has warn level and carries
// err.
func (l CtxLogger) Outcome(ctx context.Context, err error) *zerolog.Event {
	if err == nil {
		return l.Debug(ctx)
	}
	return l.Warn(ctx).Err(err)
}

func (l CtxLogger) attachComponent(e *zerolog.Event) *zerolog.Event {
	if l.component != "" {
		e.Str(ComponentField, l.component)
	}
	return e
}
