// Copyright © 2024 Meroxa, Inc.
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

package rating

import (
	"fmt"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
)

var (
	// ErrParse is returned when the input is not valid UTF-8 encoded JSON.
	ErrParse = cerrors.New("parse error")
	// ErrSchema is returned when the input is valid JSON but does not have
	// the shape of a rating document.
	ErrSchema = cerrors.New("schema error")
)

// TransformError is returned by Transform. Kind is either ErrParse or
// ErrSchema, Path points to the offending element of the input document and
// is empty for parse errors.
type TransformError struct {
	Kind error
	Path string
	Err  error
}

func (e *TransformError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%v at %q: %v", e.Kind, e.Path, e.Err)
}

func (e *TransformError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

var (
	errMissingKey = cerrors.New("missing key")
	errNotObject  = cerrors.New("not an object")
)

func parseError(err error) error {
	return &TransformError{Kind: ErrParse, Err: err}
}

func schemaError(path string, err error) error {
	return &TransformError{Kind: ErrSchema, Path: path, Err: err}
}
