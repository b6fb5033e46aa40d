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
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestCtxLogger(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		logfunc func(CtxLogger)
		want    string
	}{{
		name: "trace one-field",
		logfunc: func(logger CtxLogger) {
			logger.Trace(ctx).Str("foo", "bar").Msg("")
		},
		want: `^{"level":"trace","foo":"bar"}\n$`,
	}, {
		name: "debug two-field",
		logfunc: func(logger CtxLogger) {
			logger.Debug(ctx).
				Str("foo", "bar").
				Int("n", 123).
				Msg("")
		},
		want: `^{"level":"debug","foo":"bar","n":123}\n$`,
	}, {
		name: "info with component",
		logfunc: func(logger CtxLogger) {
			logger.WithComponent("flow.Runner").Info(ctx).Str("foo", "bar").Msg("")
		},
		want: `^{"level":"info","component":"flow.Runner","foo":"bar"}\n$`,
	}, {
		name: "warn with component removed",
		logfunc: func(logger CtxLogger) {
			logger.WithComponent("flow.Runner").WithComponent("").Warn(ctx).Msg("")
		},
		want: `^{"level":"warn"}\n$`,
	}, {
		name: "error empty",
		logfunc: func(logger CtxLogger) {
			logger.Error(ctx).Msg("")
		},
		want: `^{"level":"error"}\n$`,
	}, {
		name: "err with error",
		logfunc: func(logger CtxLogger) {
			logger.Err(ctx, cerrors.New("foo")).Str("foo", "bar").Msg("")
		},
		want: `^{"level":"error","stack":\[{"func":"github.com/conduitio/conduit-rating-translator/pkg/foundation/log.TestCtxLogger.func\d*","file":".*/pkg/foundation/log/ctxlogger_test.go","line":\d*}\],"error":"foo","foo":"bar"}\n$`,
	}, {
		name: "err without error",
		logfunc: func(logger CtxLogger) {
			logger.Err(ctx, nil).Str("foo", "bar").Msg("")
		},
		want: `^{"level":"info","foo":"bar"}\n$`,
	}, {
		name: "outcome success",
		logfunc: func(logger CtxLogger) {
			logger.Outcome(ctx, nil).Str(RelationshipField, "success").Msg("")
		},
		want: `^{"level":"debug","relationship":"success"}\n$`,
	}, {
		name: "outcome failure",
		logfunc: func(logger CtxLogger) {
			logger.WithComponent("flow.Runner").Outcome(ctx, cerrors.New("missing key")).Msg("")
		},
		want: `^{"level":"warn","component":"flow.Runner","stack":\[.*\],"error":"missing key"}\n$`,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			logger := New(zerolog.New(&out).With().Stack().Logger())
			tc.logfunc(logger)
			got := out.String()
			matched, err := regexp.Match(tc.want, []byte(got))
			if !matched || err != nil {
				t.Errorf("invalid log output:\ngot:  %v\nwant: %v", got, tc.want)
			}
		})
	}
}

func TestCtxLogger_ZerologWithComponent(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	logger := New(zerolog.New(&out)).WithComponent("processor")
	zl := logger.ZerologWithComponent()
	zl.Info().Msg("")

	is.Equal(`{"level":"info","component":"processor"}`+"\n", out.String())
}

func TestCtxLogger_Nop(t *testing.T) {
	is := is.New(t)
	logger := Nop()
	is.Equal(logger.GetLevel(), zerolog.Disabled)
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "cli", want: FormatCLI},
		{in: "json", want: FormatJSON},
		{in: "xml", want: -1, wantErr: true},
		{in: "", want: -1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			is := is.New(t)
			got, err := ParseFormat(tc.in)
			is.Equal(got, tc.want)
			is.Equal(err != nil, tc.wantErr)
		})
	}
}
