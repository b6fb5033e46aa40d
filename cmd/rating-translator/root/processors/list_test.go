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

package processors

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/conduitio/ecdysis"
	"github.com/matryer/is"
)

func TestListCommand_Execute(t *testing.T) {
	is := is.New(t)

	buf := new(bytes.Buffer)
	out := &ecdysis.DefaultOutput{}
	out.Output(buf, nil)

	cmd := &ListCommand{}
	cmd.Output(out)
	is.NoErr(cmd.Execute(context.Background()))

	got := buf.String()
	is.True(strings.Contains(got, "NAME"))
	is.True(strings.Contains(got, "rating.translate"))
	is.True(strings.Contains(got, "v0.1.0"))
}
