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

//go:generate mockgen -destination=mock/processor.go -package=mock -mock_names=Processor=Processor . Processor

// Package flow contains a minimal flow engine that feeds flow files to a
// processor and transfers the results to relationships.
package flow

import (
	"context"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/conduitio/conduit-commons/opencdc"
	sdk "github.com/conduitio/conduit-processor-sdk"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/ctxutil"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/log"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics/measure"
	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

// ErrNoResult is the error of flow files for which the processor returned no
// processed record.
var ErrNoResult = cerrors.New("processor returned no result")

// Processor is the part of sdk.Processor used by the runner.
type Processor interface {
	Open(ctx context.Context) error
	Process(ctx context.Context, records []opencdc.Record) []sdk.ProcessedRecord
	Teardown(ctx context.Context) error
}

// Options configure a Runner.
type Options struct {
	// Workers is the number of flow files processed concurrently. Values
	// below 1 are treated as 1.
	Workers int
	// Condition is an optional go template evaluated against each record.
	// Flow files for which it evaluates to false bypass the processor and are
	// transferred to success unchanged.
	Condition string
}

// Runner queues flow files, runs them through a processor and collects them
// per relationship. Each flow file is processed in a separate call to the
// processor, a failing flow file does not affect others. The processor has
// to be configured before it is passed to the runner and has to be safe for
// concurrent use if more than one worker is used.
type Runner struct {
	logger    log.CtxLogger
	processor Processor
	condition *condition
	workers   int

	m           sync.Mutex
	queue       deque.Deque[FlowFile]
	transferred map[Relationship][]FlowFile
	filtered    int
}

func NewRunner(logger log.CtxLogger, processor Processor, opts Options) (*Runner, error) {
	cond, err := newCondition(opts.Condition)
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		logger:      logger.WithComponent("flow.Runner"),
		processor:   processor,
		condition:   cond,
		workers:     workers,
		transferred: make(map[Relationship][]FlowFile),
	}, nil
}

// Enqueue creates a flow file with the given content and attributes and
// queues it. The attributes uuid, filename and path are populated if they are
// missing, the filename defaults to the entry time in nanoseconds.
func (r *Runner) Enqueue(content []byte, attrs map[string]string) FlowFile {
	now := time.Now()
	id := uuid.NewString()

	md := opencdc.Metadata(maps.Clone(attrs))
	if md == nil {
		md = make(opencdc.Metadata)
	}
	md[AttributeUUID] = id
	if _, ok := md[AttributeFilename]; !ok {
		md[AttributeFilename] = strconv.FormatInt(now.UnixNano(), 10)
	}
	if _, ok := md[AttributePath]; !ok {
		md[AttributePath] = "./"
	}

	ff := FlowFile{
		ID:               id,
		EntryDate:        now,
		LineageStartDate: now,
		Record: opencdc.Record{
			Position:  opencdc.Position(id),
			Operation: opencdc.OperationCreate,
			Metadata:  md,
			Payload:   opencdc.Change{After: opencdc.RawData(content)},
		},
	}

	r.m.Lock()
	r.queue.PushBack(ff)
	r.m.Unlock()

	return ff
}

// EnqueueDir walks dir recursively and enqueues every regular file as a flow
// file. The filename attribute is set to the base name of the file, the path
// attribute to its directory relative to dir. It returns the number of
// enqueued flow files.
func (r *Runner) EnqueueDir(ctx context.Context, dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if cerrors.Is(err, fs.ErrNotExist) {
			return 0, cerrors.Errorf("input directory %q does not exist", dir)
		}
		return 0, cerrors.Errorf("could not stat input directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return 0, cerrors.Errorf("input %q is not a directory", dir)
	}

	var count int
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.Type().IsRegular() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return cerrors.Errorf("could not read file %q: %w", path, err)
		}

		attrs := map[string]string{
			AttributeFilename: d.Name(),
			AttributePath:     relativePath(dir, filepath.Dir(path)),
		}
		if abs, err := filepath.Abs(filepath.Dir(path)); err == nil {
			attrs[AttributeAbsolutePath] = abs + string(filepath.Separator)
		}

		ff := r.Enqueue(content, attrs)
		r.logger.Trace(ctx).
			Str(log.FlowFileIDField, ff.ID).
			Str(log.FilepathField, path).
			Msg("enqueued file")
		count++
		return nil
	})
	if err != nil {
		return count, cerrors.Errorf("could not enqueue files from %q: %w", dir, err)
	}
	return count, nil
}

func relativePath(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return "./"
	}
	return filepath.ToSlash(rel) + "/"
}

// Run opens the processor, processes all queued flow files and tears the
// processor down. Flow files are transferred in the order they were queued.
// If ctx is cancelled, flow files that were not processed stay queued.
func (r *Runner) Run(ctx context.Context) (err error) {
	err = r.processor.Open(ctx)
	if err != nil {
		return cerrors.FatalError(cerrors.Errorf("could not open processor: %w", err))
	}
	defer func() {
		tdErr := r.processor.Teardown(ctx)
		err = cerrors.LogOrReplace(err, tdErr, func() {
			r.logger.Err(ctx, tdErr).Msg("could not tear down processor")
		})
	}()

	r.m.Lock()
	queue := make([]FlowFile, r.queue.Len())
	for i := range queue {
		queue[i] = r.queue.PopFront()
	}
	r.m.Unlock()

	r.logger.Debug(ctx).
		Int("count", len(queue)).
		Int(log.WorkerCountField, r.workers).
		Msg("processing flow files")

	type result struct {
		done bool
		rel  Relationship // empty if the flow file was filtered out
		ff   FlowFile
	}
	results := make([]result, len(queue))

	p := pool.New().WithMaxGoroutines(r.workers)
	for i, ff := range queue {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			rel, out := r.process(ctx, ff)
			results[i] = result{done: true, rel: rel, ff: out}
		})
	}
	p.Wait()

	r.m.Lock()
	defer r.m.Unlock()
	// unprocessed flow files go back to the front of the queue, ahead of
	// flow files enqueued during the run
	var requeued int
	for i := len(results) - 1; i >= 0; i-- {
		if !results[i].done {
			r.queue.PushFront(queue[i])
			requeued++
		}
	}
	for _, res := range results {
		switch {
		case !res.done:
		case res.rel == "":
			r.filtered++
		default:
			r.transferred[res.rel] = append(r.transferred[res.rel], res.ff)
			measure.FlowFilesCounter.WithValues(res.rel.String()).Inc()
		}
	}
	if requeued > 0 {
		r.logger.Warn(ctx).Int("count", requeued).Msg("run interrupted, flow files requeued")
		return ctx.Err()
	}
	return nil
}

// process runs a single flow file through the processor and returns the
// relationship it should be transferred to.
func (r *Runner) process(ctx context.Context, ff FlowFile) (Relationship, FlowFile) {
	ctx = ctxutil.ContextWithFlowFileID(ctx, ff.ID)

	if r.condition != nil {
		ok, err := r.condition.Evaluate(ff.Record)
		if err != nil {
			return r.fail(ctx, ff, err)
		}
		if !ok {
			r.logger.Trace(ctx).Msg("condition not met, skipping processor")
			return r.succeed(ctx, ff)
		}
	}

	measure.FlowFileBytesHistogram.Observe(float64(ff.Size()))
	start := time.Now()
	recs := r.processor.Process(ctx, []opencdc.Record{ff.Record.Clone()})
	measure.ProcessDurationTimer.UpdateSince(start)

	if len(recs) == 0 {
		return r.fail(ctx, ff, ErrNoResult)
	}

	switch v := recs[0].(type) {
	case sdk.SingleRecord:
		ff.Record = opencdc.Record(v)
		return r.succeed(ctx, ff)
	case sdk.ErrorRecord:
		return r.fail(ctx, ff, v.Error)
	case sdk.FilterRecord:
		r.logger.Debug(ctx).Msg("flow file filtered out by processor")
		return "", ff
	default:
		return r.fail(ctx, ff, cerrors.Errorf("unexpected processed record type %T", v))
	}
}

func (r *Runner) succeed(ctx context.Context, ff FlowFile) (Relationship, FlowFile) {
	return r.transfer(ctx, ff, RelationshipSuccess)
}

func (r *Runner) fail(ctx context.Context, ff FlowFile, err error) (Relationship, FlowFile) {
	ff.Err = err
	return r.transfer(ctx, ff, RelationshipFailure)
}

func (r *Runner) transfer(ctx context.Context, ff FlowFile, rel Relationship) (Relationship, FlowFile) {
	r.logger.Outcome(ctx, ff.Err).
		Str(log.FilenameField, ff.Record.Metadata[AttributeFilename]).
		Stringer(log.RelationshipField, rel).
		Msg("flow file transferred")
	return rel, ff
}

// FlowFilesForRelationship returns the flow files transferred to rel in the
// order they were queued.
func (r *Runner) FlowFilesForRelationship(rel Relationship) []FlowFile {
	r.m.Lock()
	defer r.m.Unlock()
	return append([]FlowFile(nil), r.transferred[rel]...)
}

// Counts returns the number of flow files transferred to each relationship.
func (r *Runner) Counts() map[Relationship]int {
	r.m.Lock()
	defer r.m.Unlock()
	counts := make(map[Relationship]int, len(Relationships()))
	for _, rel := range Relationships() {
		counts[rel] = len(r.transferred[rel])
	}
	return counts
}

// Filtered returns the number of flow files dropped by the processor.
func (r *Runner) Filtered() int {
	r.m.Lock()
	defer r.m.Unlock()
	return r.filtered
}

// Queued returns the number of flow files waiting to be processed.
func (r *Runner) Queued() int {
	r.m.Lock()
	defer r.m.Unlock()
	return r.queue.Len()
}
