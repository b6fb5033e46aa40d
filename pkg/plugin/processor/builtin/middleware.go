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

package builtin

import (
	"context"

	"github.com/conduitio/conduit-commons/config"
	"github.com/conduitio/conduit-commons/opencdc"
	sdk "github.com/conduitio/conduit-processor-sdk"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/ctxutil"
)

// processorWithID stores the processor ID in the context of every call, so
// log hooks can attach it. A panic in Process is reported as an error record.
type processorWithID struct {
	sdk.Processor
	id string
}

func newProcessorWithID(processor sdk.Processor, id string) *processorWithID {
	return &processorWithID{
		Processor: processor,
		id:        id,
	}
}

func (p *processorWithID) Configure(ctx context.Context, cfg config.Config) error {
	ctx = ctxutil.ContextWithProcessorID(ctx, p.id)
	return p.Processor.Configure(ctx, cfg)
}

func (p *processorWithID) Open(ctx context.Context) error {
	ctx = ctxutil.ContextWithProcessorID(ctx, p.id)
	return p.Processor.Open(ctx)
}

func (p *processorWithID) Process(ctx context.Context, records []opencdc.Record) (out []sdk.ProcessedRecord) {
	ctx = ctxutil.ContextWithProcessorID(ctx, p.id)
	defer func() {
		if r := recover(); r != nil {
			// partial results are discarded, the whole batch is reported
			// as failed starting with the first record
			out = []sdk.ProcessedRecord{sdk.ErrorRecord{
				Error: cerrors.Errorf("processor %q panicked: %v", p.id, r),
			}}
		}
	}()
	return p.Processor.Process(ctx, records)
}

func (p *processorWithID) Teardown(ctx context.Context) error {
	ctx = ctxutil.ContextWithProcessorID(ctx, p.id)
	return p.Processor.Teardown(ctx)
}
