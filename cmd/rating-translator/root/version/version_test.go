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

package version

import (
	"bytes"
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/translator"
	"github.com/conduitio/ecdysis"
	"github.com/matryer/is"
)

func TestVersionCommand(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	cmd := ecdysis.New().MustBuildCobraCommand(&VersionCommand{})
	cmd.SetArgs([]string{})
	cmd.SetOut(&out)
	is.NoErr(cmd.Execute())

	is.Equal(out.String(), translator.Version(true)+"\n")
}
