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

// Package translator wires the rating translate processor into a flow runner
// and exposes the configuration of the rating-translator command.
package translator

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/conduitio/conduit-commons/config"
	"github.com/conduitio/conduit-rating-translator/pkg/flow"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/ctxutil"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/log"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics/measure"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics/prometheus"
	"github.com/conduitio/conduit-rating-translator/pkg/plugin/processor/builtin"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
)

const translateProcessor = "rating.translate"

// Runtime sets up the translate processor and the flow runner feeding it.
type Runtime struct {
	Config Config
	Runner *flow.Runner

	gatherer          promclient.Gatherer
	unregisterMetrics func()
	logger            log.CtxLogger
}

// NewRuntime sets up a Runtime instance and primes it for start.
func NewRuntime(ctx context.Context, cfg Config) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, cerrors.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg.Log.Level, cfg.Log.Format)
	return newRuntime(ctx, cfg, logger)
}

func newRuntime(ctx context.Context, cfg Config, logger log.CtxLogger) (_ *Runtime, err error) {
	gatherer, unregisterMetrics := configurePrometheus()
	defer func() {
		if err != nil {
			unregisterMetrics()
		}
	}()
	measure.TranslatorInfo.WithValues(Version(true)).Inc()

	registry := builtin.NewRegistry(logger, builtin.DefaultBuiltinProcessors)
	proc, err := registry.NewProcessor(ctx, translateProcessor, translateProcessor)
	if err != nil {
		return nil, cerrors.Errorf("failed to create processor: %w", err)
	}
	err = proc.Configure(ctx, config.Config{
		"field":           cfg.Processor.Field,
		"filenameKey":     cfg.Processor.FilenameKey,
		"requireFilename": strconv.FormatBool(cfg.Processor.RequireFilename),
	})
	if err != nil {
		return nil, cerrors.Errorf("failed to configure processor: %w", err)
	}

	runner, err := flow.NewRunner(logger, proc, flow.Options{
		Workers:   cfg.Workers,
		Condition: cfg.Condition,
	})
	if err != nil {
		return nil, cerrors.Errorf("failed to create runner: %w", err)
	}

	return &Runtime{
		Config:            cfg,
		Runner:            runner,
		gatherer:          gatherer,
		unregisterMetrics: unregisterMetrics,
		logger:            logger.WithComponent("translator.Runtime"),
	}, nil
}

// Close stops collecting metrics for this runtime. Metrics collected so far
// can still be written.
func (r *Runtime) Close() {
	r.unregisterMetrics()
}

func newLogger(level string, format string) log.CtxLogger {
	l, _ := zerolog.ParseLevel(level)
	f, _ := log.ParseFormat(format)
	logger := log.InitLogger(l, f,
		ctxutil.FlowFileIDLogCtxHook{},
		ctxutil.ProcessorIDLogCtxHook{},
	)
	zerolog.DefaultContextLogger = &logger.Logger
	return logger
}

func configurePrometheus() (promclient.Gatherer, func()) {
	registry := prometheus.NewRegistry(nil)
	unregister := metrics.Register(registry)

	promRegistry := promclient.NewRegistry()
	promRegistry.MustRegister(registry)
	return promRegistry, unregister
}

// Run enqueues the input and runs it through the processor. The input is
// either every file in the configured input directory or, if no directory is
// configured, the content of stdin. A nil stdin is treated as no input.
func (r *Runtime) Run(ctx context.Context, stdin io.Reader) error {
	switch {
	case r.Config.Input != "":
		n, err := r.Runner.EnqueueDir(ctx, r.Config.Input)
		if err != nil {
			return err
		}
		r.logger.Debug(ctx).Int("count", n).Str(log.FilepathField, r.Config.Input).Msg("enqueued input directory")
	case stdin != nil:
		content, err := io.ReadAll(stdin)
		if err != nil {
			return cerrors.Errorf("could not read stdin: %w", err)
		}
		if len(content) > 0 {
			r.Runner.Enqueue(content, nil)
		}
	}

	err := r.Runner.Run(ctx)
	if err != nil {
		return err
	}

	if r.Config.Output != "" {
		return r.writeOutput(ctx, r.Config.Output)
	}
	return nil
}

// writeOutput writes the content of every flow file transferred to success
// into dir, named after its filename attribute and placed under its path
// attribute. Nothing is written if two flow files map to the same file.
func (r *Runtime) writeOutput(ctx context.Context, dir string) error {
	flowFiles := r.Runner.FlowFilesForRelationship(flow.RelationshipSuccess)

	paths := make([]string, len(flowFiles))
	written := make(map[string]string, len(flowFiles))
	for i, ff := range flowFiles {
		path := r.outputPath(dir, ff)
		if id, ok := written[path]; ok {
			return cerrors.Errorf("flow files %s and %s would both be written to %q", id, ff.ID, path)
		}
		written[path] = ff.ID
		paths[i] = path
	}

	for i, ff := range flowFiles {
		path := paths[i]
		err := os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			return cerrors.Errorf("could not create output directory %q: %w", filepath.Dir(path), err)
		}
		err = os.WriteFile(path, ff.Content(), 0o644)
		if err != nil {
			return cerrors.Errorf("could not write flow file %q: %w", path, err)
		}
		r.logger.Trace(ctx).
			Str(log.FlowFileIDField, ff.ID).
			Str(log.FilepathField, path).
			Msg("wrote flow file")
	}
	return nil
}

// outputPath returns the file a flow file is written to. The path attribute
// is rooted before joining, so it can't point outside of dir.
func (r *Runtime) outputPath(dir string, ff flow.FlowFile) string {
	attrs := ff.Attributes()
	name := filepath.Base(attrs[r.Config.Processor.FilenameKey])
	if name == "." || name == string(filepath.Separator) {
		name = ff.ID
	}
	rel := filepath.Join(string(filepath.Separator), filepath.FromSlash(attrs[flow.AttributePath]))
	return filepath.Join(dir, rel, name)
}

// WriteMetrics writes the metrics collected during the run in the prometheus
// text exposition format.
func (r *Runtime) WriteMetrics(w io.Writer) error {
	families, err := r.gatherer.Gather()
	if err != nil {
		return cerrors.Errorf("could not gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return cerrors.Errorf("could not encode metrics: %w", err)
		}
	}
	return nil
}
