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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/conduitio/conduit-rating-translator/cmd/rating-translator/internal"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/translator"
	"github.com/conduitio/ecdysis"
)

var (
	_ ecdysis.CommandWithExecute = (*InitCommand)(nil)
	_ ecdysis.CommandWithDocs    = (*InitCommand)(nil)
	_ ecdysis.CommandWithFlags   = (*InitCommand)(nil)
)

type InitFlags struct {
	Path  string `long:"path" usage:"Path where the configuration file will be written." default:"."`
	Force bool   `long:"force" usage:"Overwrite an existing configuration file."`
}

type InitCommand struct {
	flags InitFlags
}

func (c *InitCommand) Flags() []ecdysis.Flag {
	flags := ecdysis.BuildFlags(&c.flags)
	flags.SetDefault("path", ".")
	return flags
}

func (c *InitCommand) Usage() string { return "init" }

func (c *InitCommand) Docs() ecdysis.Docs {
	return ecdysis.Docs{
		Short: "Initialize the rating translator with a configuration file.",
		Long: `Writes ` + translator.DefaultConfigFile + ` containing the default configuration
of the run command, every option documented with a comment.`,
	}
}

func (c *InitCommand) Execute(ctx context.Context) error {
	path, err := c.writeConfigYAML()
	if err != nil {
		return cerrors.Errorf("failed to create config YAML: %w", err)
	}

	out := io.Writer(os.Stdout)
	if cmd := ecdysis.CobraCmdFromContext(ctx); cmd != nil {
		out = cmd.OutOrStdout()
	}
	_, _ = fmt.Fprintf(out, "Config file written to %v\n", path)
	return nil
}

func (c *InitCommand) writeConfigYAML() (string, error) {
	path := filepath.Join(c.flags.Path, translator.DefaultConfigFile)
	if _, err := os.Stat(path); err == nil && !c.flags.Force {
		return "", cerrors.Errorf("%s already exists, use --force to overwrite it", path)
	}

	var buf bytes.Buffer
	err := configYAML(translator.DefaultConfig()).Encode(&buf)
	if err != nil {
		return "", cerrors.Errorf("error marshaling YAML: %w", err)
	}

	err = os.MkdirAll(c.flags.Path, 0o755)
	if err != nil {
		return "", cerrors.Errorf("failed to create directory %q: %w", c.flags.Path, err)
	}
	err = os.WriteFile(path, buf.Bytes(), 0o600)
	if err != nil {
		return "", cerrors.Errorf("error writing %s: %w", path, err)
	}
	return path, nil
}

func configYAML(cfg translator.Config) *internal.YAMLTree {
	tree := internal.NewYAMLTree()
	processConfigStruct(reflect.ValueOf(&cfg).Elem(), tree)
	return tree
}

// processConfigStruct inserts every field with a long tag into the tree. The
// configuration file path is skipped, it can't be set from within the file.
func processConfigStruct(v reflect.Value, tree *internal.YAMLTree) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if fieldValue.Kind() == reflect.Struct {
			processConfigStruct(fieldValue, tree)
			continue
		}

		longName := field.Tag.Get("long")
		if longName == "" || longName == "config.path" {
			continue
		}
		value := fmt.Sprintf("%v", fieldValue.Interface())
		if value != "" {
			tree.Insert(longName, value, field.Tag.Get("usage"))
		}
	}
}
