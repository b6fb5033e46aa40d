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

package run

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/conduitio/conduit-rating-translator/pkg/flow"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/translator"
	"github.com/conduitio/ecdysis"
	"github.com/mattn/go-isatty"
)

var (
	_ ecdysis.CommandWithFlags   = (*RunCommand)(nil)
	_ ecdysis.CommandWithExecute = (*RunCommand)(nil)
	_ ecdysis.CommandWithDocs    = (*RunCommand)(nil)
	_ ecdysis.CommandWithConfig  = (*RunCommand)(nil)
)

type RunFlags struct {
	translator.Config
}

type RunCommand struct {
	flags RunFlags
	Cfg   translator.Config

	// stdin and stdout replace the process streams when set.
	stdin  io.Reader
	stdout io.Writer
}

func (c *RunCommand) Execute(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := translator.NewRuntime(ctx, c.Cfg)
	if err != nil {
		return cerrors.Errorf("could not set up rating translator: %w", err)
	}
	defer rt.Close()

	out := c.output(ctx)
	err = reportRun(out, c.Cfg, rt.Runner, rt.Run(ctx, c.input()))
	if err != nil {
		return err
	}

	if c.Cfg.Metrics {
		if err := rt.WriteMetrics(out); err != nil {
			return cerrors.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// reportRun prints the report of a run that ended with runErr. An interrupted
// run still reports the flow files transferred before it was cancelled.
func reportRun(out io.Writer, cfg translator.Config, runner *flow.Runner, runErr error) error {
	if runErr != nil && !cerrors.Is(runErr, context.Canceled) {
		return runErr
	}
	printReport(out, cfg, runner)
	return runErr
}

// input returns the reader flow files are read from when no input directory
// is configured. An interactive terminal is never read.
func (c *RunCommand) input() io.Reader {
	if c.stdin != nil {
		return c.stdin
	}
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return os.Stdin
}

func (c *RunCommand) output(ctx context.Context) io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	if cmd := ecdysis.CobraCmdFromContext(ctx); cmd != nil {
		return cmd.OutOrStdout()
	}
	return os.Stdout
}

func (c *RunCommand) Config() ecdysis.Config {
	path := filepath.Dir(c.flags.ConfigFile.Path)

	return ecdysis.Config{
		EnvPrefix:     translator.EnvPrefix,
		Parsed:        &c.Cfg,
		Path:          c.flags.ConfigFile.Path,
		DefaultValues: translator.DefaultConfigWithBasePath(path),
	}
}

func (c *RunCommand) Usage() string { return "run" }

func (c *RunCommand) Flags() []ecdysis.Flag {
	flags := ecdysis.BuildFlags(&c.flags)

	currentPath, err := os.Getwd()
	if err != nil {
		panic(cerrors.Errorf("failed to get current working directory: %w", err))
	}

	c.Cfg = translator.DefaultConfigWithBasePath(currentPath)
	flags.SetDefault("config.path", c.Cfg.ConfigFile.Path)
	flags.SetDefault("log.level", c.Cfg.Log.Level)
	flags.SetDefault("log.format", c.Cfg.Log.Format)
	flags.SetDefault("input", c.Cfg.Input)
	flags.SetDefault("output", c.Cfg.Output)
	flags.SetDefault("success", c.Cfg.Success)
	flags.SetDefault("no-success", c.Cfg.NoSuccess)
	flags.SetDefault("failure", c.Cfg.Failure)
	flags.SetDefault("all-rels", c.Cfg.AllRels)
	flags.SetDefault("content", c.Cfg.Content)
	flags.SetDefault("attrs", c.Cfg.Attrs)
	flags.SetDefault("all", c.Cfg.All)
	flags.SetDefault("workers", c.Cfg.Workers)
	flags.SetDefault("condition", c.Cfg.Condition)
	flags.SetDefault("metrics", c.Cfg.Metrics)
	flags.SetDefault("processor.field", c.Cfg.Processor.Field)
	flags.SetDefault("processor.filename-key", c.Cfg.Processor.FilenameKey)
	flags.SetDefault("processor.require-filename", c.Cfg.Processor.RequireFilename)
	return flags
}

func (c *RunCommand) Docs() ecdysis.Docs {
	return ecdysis.Docs{
		Short: "Run rating documents through the translator",
		Long: `Sends every file in the input directory (or the data piped to stdin) as a flow
file through the rating.translate processor and prints the flow files transferred
to the selected relationships.`,
		Example: "rating-translator run --input ./ratings --all\ncat rating.json | rating-translator run --content",
	}
}
