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

package initialize

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/translator"
	"github.com/conduitio/ecdysis"
	"github.com/conduitio/yaml/v3"
	"github.com/matryer/is"
)

func TestInitCommand_Execute(t *testing.T) {
	is := is.New(t)
	dir := filepath.Join(t.TempDir(), "nested")

	var out bytes.Buffer
	cmd := ecdysis.New().MustBuildCobraCommand(&InitCommand{})
	cmd.SetArgs([]string{"--path", dir})
	cmd.SetOut(&out)
	is.NoErr(cmd.Execute())

	path := filepath.Join(dir, translator.DefaultConfigFile)
	is.Equal(out.String(), "Config file written to "+path+"\n")

	raw, err := os.ReadFile(path)
	is.NoErr(err)

	var got map[string]any
	is.NoErr(yaml.Unmarshal(raw, &got))

	is.Equal(got["log"], map[string]any{"level": "info", "format": "cli"})
	is.Equal(got["success"], true)
	is.Equal(got["workers"], 1)
	is.Equal(got["processor"], map[string]any{
		"field":            ".Payload.After",
		"filename-key":     "filename",
		"require-filename": false,
	})
	_, ok := got["config"]
	is.True(!ok)
	_, ok = got["input"]
	is.True(!ok)

	is.True(strings.Contains(string(raw), "# output flow files transferred to success\nsuccess: true\n"))
}

func TestInitCommand_ExistingFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, translator.DefaultConfigFile)
	is.NoErr(os.WriteFile(path, []byte("workers: 4\n"), 0o600))

	c := &InitCommand{flags: InitFlags{Path: dir}}
	_, err := c.writeConfigYAML()
	is.True(err != nil)

	raw, err := os.ReadFile(path)
	is.NoErr(err)
	is.Equal(string(raw), "workers: 4\n")

	c.flags.Force = true
	_, err = c.writeConfigYAML()
	is.NoErr(err)

	raw, err = os.ReadFile(path)
	is.NoErr(err)
	is.True(strings.Contains(string(raw), "workers: 1"))
}
