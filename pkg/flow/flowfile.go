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
	"maps"
	"time"

	"github.com/conduitio/conduit-commons/opencdc"
)

// Standard attributes assigned to every flow file on enqueue.
const (
	AttributeUUID         = "uuid"
	AttributeFilename     = "filename"
	AttributePath         = "path"
	AttributeAbsolutePath = "absolute.path"
)

// FlowFile is a unit of data moving through the runner. The content is stored
// in the record payload, attributes are stored in the record metadata.
type FlowFile struct {
	ID               string
	EntryDate        time.Time
	LineageStartDate time.Time
	Record           opencdc.Record

	// Err is set when the flow file was transferred to the failure
	// relationship.
	Err error
}

// Attributes returns a copy of the flow file attributes.
func (f FlowFile) Attributes() map[string]string {
	return maps.Clone(f.Record.Metadata)
}

// Content returns the flow file content.
func (f FlowFile) Content() []byte {
	if f.Record.Payload.After == nil {
		return nil
	}
	return f.Record.Payload.After.Bytes()
}

// Size returns the size of the content in bytes.
func (f FlowFile) Size() int {
	return len(f.Content())
}
