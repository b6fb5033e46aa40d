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

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/plugin/processor/builtin"
	"github.com/conduitio/ecdysis"
	"github.com/matryer/is"
)

func TestDescribeExecutionNoArgs(t *testing.T) {
	is := is.New(t)

	c := DescribeCommand{}
	err := c.Args([]string{})

	is.True(err != nil)
	is.Equal(err.Error(), "requires a processor name")
}

func TestDescribeExecutionMultipleArgs(t *testing.T) {
	is := is.New(t)

	c := DescribeCommand{}
	err := c.Args([]string{"foo", "bar"})

	is.True(err != nil)
	is.Equal(err.Error(), "too many arguments")
}

func TestDescribeExecutionCorrectArgs(t *testing.T) {
	is := is.New(t)

	c := DescribeCommand{}
	err := c.Args([]string{"rating.translate"})

	is.NoErr(err)
	is.Equal(c.args.processorName, "rating.translate")
}

func TestDescribeCommand_Execute(t *testing.T) {
	testCases := []string{"rating.translate", "rating.translate@v0.1.0"}

	for _, name := range testCases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			buf := new(bytes.Buffer)
			out := &ecdysis.DefaultOutput{}
			out.Output(buf, nil)

			cmd := &DescribeCommand{args: DescribeArgs{processorName: name}}
			cmd.Output(out)
			is.NoErr(cmd.Execute(context.Background()))

			got := buf.String()
			is.True(strings.HasPrefix(got, "Name: rating.translate\n"))
			is.True(strings.Contains(got, "Version: v0.1.0\n"))
			is.True(strings.Contains(got, "Parameters:\n"))
			is.True(strings.Contains(got, "filenameKey"))
			is.True(strings.Contains(got, "requireFilename"))
		})
	}
}

func TestDescribeCommand_ExecuteNotFound(t *testing.T) {
	is := is.New(t)

	cmd := &DescribeCommand{args: DescribeArgs{processorName: "rating.unknown"}}
	cmd.Output(&ecdysis.DefaultOutput{})

	err := cmd.Execute(context.Background())
	is.True(cerrors.Is(err, builtin.ErrProcessorNotFound))
}
