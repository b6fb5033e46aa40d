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
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/flow"
	"github.com/matryer/is"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		setupConfig func(Config) Config
		want        string
	}{{
		name:        "valid",
		setupConfig: func(c Config) Config { return c },
		want:        "",
	}, {
		name: "missing log level",
		setupConfig: func(c Config) Config {
			c.Log.Level = ""
			return c
		},
		want: `"log.level" config value is required`,
	}, {
		name: "invalid log level",
		setupConfig: func(c Config) Config {
			c.Log.Level = "loud"
			return c
		},
		want: `"log.level" config value is invalid`,
	}, {
		name: "missing log format",
		setupConfig: func(c Config) Config {
			c.Log.Format = ""
			return c
		},
		want: `"log.format" config value is required`,
	}, {
		name: "invalid log format",
		setupConfig: func(c Config) Config {
			c.Log.Format = "xml"
			return c
		},
		want: `"log.format" config value is invalid`,
	}, {
		name: "no workers",
		setupConfig: func(c Config) Config {
			c.Workers = 0
			return c
		},
		want: `"workers" config value is invalid`,
	}, {
		name: "missing processor field",
		setupConfig: func(c Config) Config {
			c.Processor.Field = ""
			return c
		},
		want: `"processor.field" config value is required`,
	}, {
		name: "missing filename key",
		setupConfig: func(c Config) Config {
			c.Processor.FilenameKey = ""
			return c
		},
		want: `"processor.filename-key" config value is required`,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)

			err := tc.setupConfig(DefaultConfig()).Validate()
			if tc.want == "" {
				is.NoErr(err)
				return
			}
			is.True(err != nil)
			is.Equal(err.Error(), tc.want)
		})
	}
}

func TestDefaultConfigWithBasePath(t *testing.T) {
	is := is.New(t)

	cfg := DefaultConfigWithBasePath("/etc/translator")
	is.Equal(cfg.ConfigFile.Path, "/etc/translator/rating-translator.yaml")
	is.Equal(cfg.Log.Level, "info")
	is.Equal(cfg.Log.Format, "cli")
	is.Equal(cfg.Workers, 1)
	is.Equal(cfg.Processor.Field, ".Payload.After")
	is.Equal(cfg.Processor.FilenameKey, "filename")
	is.True(cfg.Success)
}

func TestConfig_Relationships(t *testing.T) {
	testCases := []struct {
		name        string
		setupConfig func(*Config)
		want        []flow.Relationship
		wantContent bool
		wantAttrs   bool
	}{{
		name:        "default",
		setupConfig: func(*Config) {},
		want:        []flow.Relationship{flow.RelationshipSuccess},
	}, {
		name:        "no success",
		setupConfig: func(c *Config) { c.NoSuccess = true },
		want:        nil,
	}, {
		name:        "failure",
		setupConfig: func(c *Config) { c.Failure = true },
		want:        []flow.Relationship{flow.RelationshipSuccess, flow.RelationshipFailure},
	}, {
		name: "failure only",
		setupConfig: func(c *Config) {
			c.Failure = true
			c.NoSuccess = true
		},
		want: []flow.Relationship{flow.RelationshipFailure},
	}, {
		name: "all relationships override no success",
		setupConfig: func(c *Config) {
			c.AllRels = true
			c.NoSuccess = true
		},
		want: []flow.Relationship{flow.RelationshipSuccess, flow.RelationshipFailure},
	}, {
		name:        "content and attributes",
		setupConfig: func(c *Config) { c.Content, c.Attrs = true, true },
		want:        []flow.Relationship{flow.RelationshipSuccess},
		wantContent: true,
		wantAttrs:   true,
	}, {
		name:        "all",
		setupConfig: func(c *Config) { c.All = true },
		want:        []flow.Relationship{flow.RelationshipSuccess, flow.RelationshipFailure},
		wantContent: true,
		wantAttrs:   true,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)

			cfg := DefaultConfig()
			tc.setupConfig(&cfg)
			is.Equal(cfg.Relationships(), tc.want)
			is.Equal(cfg.OutputContent(), tc.wantContent)
			is.Equal(cfg.OutputAttributes(), tc.wantAttrs)
		})
	}
}
