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
	"runtime"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
)

var _, helperFilePath, _, _ = runtime.Caller(0)

func readRating() error {
	return cerrors.New("unexpected end of rating")
}

func translateFile() error {
	if err := decodeRating(); err != nil {
		return cerrors.Errorf("could not translate file: %w", err)
	}
	return nil
}

func decodeRating() error {
	if err := readRating(); err != nil {
		return cerrors.Errorf("could not decode rating: %w", err)
	}
	return nil
}
