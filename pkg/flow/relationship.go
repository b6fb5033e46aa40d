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

package flow

import (
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
)

// Relationship is the destination a processed flow file is transferred to.
type Relationship string

const (
	RelationshipSuccess Relationship = "success"
	RelationshipFailure Relationship = "failure"
)

// Relationships returns all relationships in the order they are reported.
func Relationships() []Relationship {
	return []Relationship{RelationshipSuccess, RelationshipFailure}
}

func (r Relationship) String() string {
	return string(r)
}

// ParseRelationship returns the relationship with the given name.
func ParseRelationship(name string) (Relationship, error) {
	for _, r := range Relationships() {
		if string(r) == name {
			return r, nil
		}
	}
	return "", cerrors.Errorf("unknown relationship %q", name)
}
