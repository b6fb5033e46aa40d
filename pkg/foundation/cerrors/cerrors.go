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

// Package cerrors contains functions related to error handling.
//
// All errors created in the translator should go through this package so
// they carry the frame where they were created. Functions are forwarded from
// xerrors (creation) and the standard errors package (inspection).
package cerrors

import (
	"errors" //nolint:depguard // the std. errors package is allowed only in this package
	"reflect"
	"runtime"

	"golang.org/x/xerrors" //nolint:depguard // the xerrors package is allowed only in this package
)

var (
	New    = xerrors.New    //nolint:forbidigo // xerrors.New is allowed here, but not anywhere else
	Errorf = xerrors.Errorf //nolint:forbidigo // xerrors.Errorf is allowed here, but not anywhere else
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

type Frame struct {
	Func string `json:"func,omitempty"`
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
}

// GetStackTrace collects the frames of all xerrors in the chain of err. It is
// installed as the zerolog stack marshaler.
func GetStackTrace(err error) interface{} {
	defer func() { recover() }() //nolint:errcheck // used for logging, a panic here must not crash the runner

	var frames []Frame
	for w := err; w != nil; w = errors.Unwrap(w) {
		if hasStackTrace(w) {
			frames = append(frames, getRuntimeFrame(w))
		}
	}

	return frames
}

// LogOrReplace returns oldErr if it is not nil and calls log so newErr can be
// reported. Otherwise newErr is returned.
func LogOrReplace(oldErr, newErr error, log func()) error {
	switch {
	case oldErr != nil && newErr != nil:
		log()
		return oldErr
	case oldErr != nil:
		return oldErr
	default:
		return newErr
	}
}

func hasStackTrace(err error) bool {
	errT := reflect.TypeOf(err)
	return errT != nil && errT.Kind() == reflect.Ptr && errT.Elem().PkgPath() == "golang.org/x/xerrors"
}

func getRuntimeFrame(err error) Frame {
	frame := reflect.ValueOf(err).Elem().FieldByName("frame") // type Frame struct{ frames [3]uintptr }
	framesField := frame.FieldByName("frames")
	pc := make([]uintptr, framesField.Len())
	for i := 0; i < framesField.Len(); i++ {
		pc[i] = uintptr(framesField.Index(i).Uint())
	}

	// mimic xerrors' printing of an error in extended format
	frames := runtime.CallersFrames(pc)
	if _, ok := frames.Next(); !ok {
		return Frame{}
	}
	fr, ok := frames.Next()
	if !ok {
		return Frame{}
	}
	return Frame{
		Func: fr.Function,
		File: fr.File,
		Line: fr.Line,
	}
}
