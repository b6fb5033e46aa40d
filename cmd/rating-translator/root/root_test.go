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

package root

import (
	"bytes"
	"strings"
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/translator"
	"github.com/conduitio/ecdysis"
	"github.com/matryer/is"
)

func TestRootCommandFlags(t *testing.T) {
	is := is.New(t)

	expectedFlags := []struct {
		longName   string
		shortName  string
		required   bool
		persistent bool
		hidden     bool
	}{
		{longName: "version", shortName: "v", persistent: true},
	}

	c := &RootCommand{}
	flags := c.Flags()

	for _, ef := range expectedFlags {
		var foundFlag *ecdysis.Flag
		for _, f := range flags {
			if f.Long == ef.longName {
				foundFlag = &f
				break
			}
		}

		is.True(foundFlag != nil)

		if foundFlag != nil {
			is.Equal(ef.shortName, foundFlag.Short)
			is.Equal(ef.required, foundFlag.Required)
			is.Equal(ef.persistent, foundFlag.Persistent)
			is.Equal(ef.hidden, foundFlag.Hidden)
		}
	}
}

func TestRootCommand_SubCommands(t *testing.T) {
	is := is.New(t)

	cmd := ecdysis.New().MustBuildCobraCommand(&RootCommand{})

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"init", "processors", "run", "version"} {
		is.True(strings.Contains(strings.Join(names, ","), want))
	}
}

func TestRootCommand_Version(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	c := &RootCommand{out: &out}
	cmd := ecdysis.New().MustBuildCobraCommand(c)
	cmd.SetArgs([]string{"--version"})
	is.NoErr(cmd.Execute())

	is.Equal(out.String(), translator.Version(true)+"\n")
}
