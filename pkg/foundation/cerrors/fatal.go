// Copyright © 2024 Meroxa, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cerrors

import "fmt"

// fatalError marks errors that stop a whole run, as opposed to errors that
// only fail a single flow file.
type fatalError struct {
	Err error
}

// FatalError wraps err in a fatal error. Wrapping an error that is already
// fatal returns it unchanged.
func FatalError(err error) error {
	if IsFatalError(err) {
		return err
	}
	return &fatalError{Err: err}
}

func (f *fatalError) Unwrap() error {
	return f.Err
}

func (f *fatalError) Error() string {
	return fmt.Sprintf("fatal error: %v", f.Err)
}

// IsFatalError checks if err or any error it wraps is fatal.
func IsFatalError(err error) bool {
	var fe *fatalError
	return As(err, &fe)
}
