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

package translator

import (
	"path/filepath"

	"github.com/conduitio/conduit-rating-translator/pkg/flow"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/log"
	"github.com/rs/zerolog"
)

const (
	DefaultConfigFile = "rating-translator.yaml"
	EnvPrefix         = "RATING_TRANSLATOR"
)

// Config holds all configurable values for the rating translator.
type Config struct {
	ConfigFile struct {
		Path string `long:"config.path" usage:"global configuration file" mapstructure:"path"`
	} `mapstructure:"config"`

	Log struct {
		Level  string `long:"log.level" usage:"sets logging level; accepts debug, info, warn, error, trace" mapstructure:"level"`
		Format string `long:"log.format" usage:"sets the format of the logging; accepts json, cli" mapstructure:"format"`
	} `mapstructure:"log"`

	Input  string `long:"input" usage:"send every file in the directory as a flow file; stdin is read when empty" mapstructure:"input"`
	Output string `long:"output" usage:"write the content of flow files transferred to success into the directory" mapstructure:"output"`

	Success   bool `long:"success" usage:"output flow files transferred to success" mapstructure:"success"`
	NoSuccess bool `long:"no-success" usage:"do not output flow files transferred to success" mapstructure:"no-success"`
	Failure   bool `long:"failure" usage:"output flow files transferred to failure" mapstructure:"failure"`
	AllRels   bool `long:"all-rels" usage:"output flow files transferred to all relationships" mapstructure:"all-rels"`
	Content   bool `long:"content" usage:"output flow file content" mapstructure:"content"`
	Attrs     bool `long:"attrs" usage:"output flow file attributes" mapstructure:"attrs"`
	All       bool `long:"all" usage:"output content, attributes and all relationships" mapstructure:"all"`

	Workers   int    `long:"workers" usage:"number of flow files processed concurrently" mapstructure:"workers"`
	Condition string `long:"condition" usage:"go template evaluated per flow file, flow files evaluating to false skip the processor" mapstructure:"condition"`
	Metrics   bool   `long:"metrics" usage:"print prometheus metrics of the run" mapstructure:"metrics"`

	Processor struct {
		Field           string `long:"processor.field" usage:"reference to the record field containing the rating document" mapstructure:"field"`
		FilenameKey     string `long:"processor.filename-key" usage:"attribute holding the filename that gets renamed" mapstructure:"filename-key"`
		RequireFilename bool   `long:"processor.require-filename" usage:"transfer flow files without the filename attribute to failure" mapstructure:"require-filename"`
	} `mapstructure:"processor"`
}

func DefaultConfig() Config {
	return DefaultConfigWithBasePath(".")
}

func DefaultConfigWithBasePath(basePath string) Config {
	var cfg Config

	cfg.ConfigFile.Path = filepath.Join(basePath, DefaultConfigFile)
	cfg.Log.Level = "info"
	cfg.Log.Format = "cli"
	cfg.Success = true
	cfg.Workers = 1
	cfg.Processor.Field = ".Payload.After"
	cfg.Processor.FilenameKey = flow.AttributeFilename

	return cfg
}

func (c Config) Validate() error {
	if c.Log.Level == "" {
		return requiredConfigFieldErr("log.level")
	}
	_, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return invalidConfigFieldErr("log.level")
	}

	if c.Log.Format == "" {
		return requiredConfigFieldErr("log.format")
	}
	_, err = log.ParseFormat(c.Log.Format)
	if err != nil {
		return invalidConfigFieldErr("log.format")
	}

	if c.Workers < 1 {
		return invalidConfigFieldErr("workers")
	}

	if c.Processor.Field == "" {
		return requiredConfigFieldErr("processor.field")
	}
	if c.Processor.FilenameKey == "" {
		return requiredConfigFieldErr("processor.filename-key")
	}

	return nil
}

// Relationships returns the relationships whose flow files should be output.
func (c Config) Relationships() []flow.Relationship {
	var rels []flow.Relationship
	if (c.Success && !c.NoSuccess) || c.AllRels || c.All {
		rels = append(rels, flow.RelationshipSuccess)
	}
	if c.Failure || c.AllRels || c.All {
		rels = append(rels, flow.RelationshipFailure)
	}
	return rels
}

// OutputContent returns true if the content of flow files should be output.
func (c Config) OutputContent() bool {
	return c.Content || c.All
}

// OutputAttributes returns true if the attributes of flow files should be
// output.
func (c Config) OutputAttributes() bool {
	return c.Attrs || c.All
}

func invalidConfigFieldErr(name string) error {
	return cerrors.Errorf("%q config value is invalid", name)
}

func requiredConfigFieldErr(name string) error {
	return cerrors.Errorf("%q config value is required", name)
}
