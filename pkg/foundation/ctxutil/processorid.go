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

package ctxutil

import (
	"context"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/log"
	"github.com/rs/zerolog"
)

type processorIDCtxKey struct{}

// ContextWithProcessorID wraps ctx and returns a context that contains the ID
// of the processor handling the current flow file.
func ContextWithProcessorID(ctx context.Context, processorID string) context.Context {
	return context.WithValue(ctx, processorIDCtxKey{}, processorID)
}

// ProcessorIDFromContext fetches the processor ID from the context. It returns
// an empty string if the context does not contain one.
func ProcessorIDFromContext(ctx context.Context) string {
	processorID := ctx.Value(processorIDCtxKey{})
	if processorID != nil {
		return processorID.(string)
	}
	return ""
}

// ProcessorIDLogCtxHook adds the processor ID stored in the event context to
// the log output.
type ProcessorIDLogCtxHook struct{}

func (h ProcessorIDLogCtxHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	p := ProcessorIDFromContext(e.GetCtx())
	if p != "" {
		e.Str(log.ProcessorIDField, p)
	}
}
