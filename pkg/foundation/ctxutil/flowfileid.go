// Copyright © 2026 Meroxa, Inc.
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

type flowFileIDCtxKey struct{}

// ContextWithFlowFileID wraps ctx and returns a context that contains the ID
// of the flow file currently being processed.
func ContextWithFlowFileID(ctx context.Context, flowFileID string) context.Context {
	return context.WithValue(ctx, flowFileIDCtxKey{}, flowFileID)
}

// FlowFileIDFromContext fetches the flow file ID from the context. If the
// context does not contain a flow file ID it returns an empty string.
func FlowFileIDFromContext(ctx context.Context) string {
	flowFileID := ctx.Value(flowFileIDCtxKey{})
	if flowFileID != nil {
		return flowFileID.(string)
	}
	return ""
}

// FlowFileIDLogCtxHook adds the flow file ID stored in the event context to
// the log output.
type FlowFileIDLogCtxHook struct{}

func (h FlowFileIDLogCtxHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	id := FlowFileIDFromContext(e.GetCtx())
	if id != "" {
		e.Str(log.FlowFileIDField, id)
	}
}
