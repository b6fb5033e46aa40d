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

package cerrors_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/matryer/is"
)

const pkgPath = "github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors_test"

var _, testFileLocation, _, _ = runtime.Caller(0)

type secretError struct{}

func (s *secretError) Error() string {
	return "secret error message"
}

type unwrapPanicError struct{}

func (w *unwrapPanicError) Error() string {
	return "calling Unwrap() will panic"
}

func (w *unwrapPanicError) Unwrap() error {
	panic("you didn't expect this to happen")
}

func TestNew(t *testing.T) {
	is := is.New(t)

	err := readRating()
	s := fmt.Sprintf("%+v", err)
	is.Equal(
		"unexpected end of rating:\n    "+pkgPath+".readRating\n        "+helperFilePath+":26",
		s,
	)
}

func TestErrorf(t *testing.T) {
	is := is.New(t)

	err := cerrors.Errorf("caused by: %w", readRating())
	s := fmt.Sprintf("%+v", err)
	is.Equal(
		"caused by:\n    "+pkgPath+".TestErrorf\n        "+
			testFileLocation+":60\n  - "+
			"unexpected end of rating:\n    "+pkgPath+".readRating\n        "+
			helperFilePath+":26",
		s,
	)
}

func TestGetStackTrace(t *testing.T) {
	testCases := []struct {
		desc     string
		err      error
		expected []cerrors.Frame
	}{
		{
			desc:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			desc:     "third party error",
			err:      &secretError{},
			expected: nil,
		},
		{
			desc: "error wrapping third party error",
			err:  cerrors.Errorf("caused by: %w", &secretError{}),
			expected: []cerrors.Frame{
				{
					Func: pkgPath + ".TestGetStackTrace",
					File: testFileLocation,
					Line: 89,
				},
			},
		},
		{
			desc:     "handle panics",
			err:      cerrors.Errorf("caused by: %w", &unwrapPanicError{}),
			expected: nil,
		},
		{
			desc: "multiple frames",
			err:  translateFile(),
			expected: []cerrors.Frame{
				{
					Func: pkgPath + ".translateFile",
					File: helperFilePath,
					Line: 31,
				},
				{
					Func: pkgPath + ".decodeRating",
					File: helperFilePath,
					Line: 38,
				},
				{
					Func: pkgPath + ".readRating",
					File: helperFilePath,
					Line: 26,
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			is := is.New(t)

			res := cerrors.GetStackTrace(tc.err)
			if tc.expected == nil {
				is.True(res == nil || len(res.([]cerrors.Frame)) == 0)
				return
			}
			act, ok := res.([]cerrors.Frame)
			is.True(ok) // expected []cerrors.Frame
			is.Equal(tc.expected, act)
		})
	}
}

func TestLogOrReplace(t *testing.T) {
	errFoo := cerrors.New("foo")
	errBar := cerrors.New("bar")

	testCases := map[string]struct {
		oldErr        error
		newErr        error
		wantErr       error
		wantLogCalled bool
	}{
		"both nil": {},
		"oldErr exists, newErr nil": {
			oldErr:  errFoo,
			wantErr: errFoo,
		},
		"oldErr nil, newErr exists": {
			newErr:  errFoo,
			wantErr: errFoo,
		},
		"both exist": {
			oldErr:        errFoo,
			newErr:        errBar,
			wantErr:       errFoo,
			wantLogCalled: true,
		},
	}

	for testName, tc := range testCases {
		t.Run(testName, func(t *testing.T) {
			is := is.New(t)

			logCalled := false
			gotErr := cerrors.LogOrReplace(tc.oldErr, tc.newErr, func() {
				logCalled = true
			})
			is.Equal(tc.wantErr, gotErr)
			is.Equal(tc.wantLogCalled, logCalled)
		})
	}
}

func TestFatalError(t *testing.T) {
	is := is.New(t)

	err := cerrors.New("processor failed to open")

	// wrapping the error multiple times should not change the message
	fatalErr := cerrors.FatalError(err)
	fatalErr = cerrors.FatalError(fatalErr)
	fatalErr = cerrors.FatalError(fatalErr)

	is.Equal(fatalErr.Error(), fmt.Sprintf("fatal error: %v", err))
	is.True(cerrors.Is(fatalErr, err))
}

func TestIsFatalError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{{
		name: "fatal error",
		err:  cerrors.FatalError(cerrors.New("boom")),
		want: true,
	}, {
		name: "wrapped fatal error",
		err:  cerrors.Errorf("run failed: %w", cerrors.FatalError(cerrors.New("boom"))),
		want: true,
	}, {
		name: "joined fatal error",
		err:  cerrors.Join(cerrors.New("other"), cerrors.FatalError(cerrors.New("boom"))),
		want: true,
	}, {
		name: "regular error",
		err:  cerrors.New("boom"),
		want: false,
	}, {
		name: "nil",
		err:  nil,
		want: false,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(cerrors.IsFatalError(tc.err), tc.want)
		})
	}
}
