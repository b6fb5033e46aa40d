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
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/log"
	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestContextWithFlowFileID(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()
	id := uuid.NewString()

	ctx = ContextWithFlowFileID(ctx, "previous flow file")
	ctx = ContextWithFlowFileID(ctx, id)

	is.Equal(id, FlowFileIDFromContext(ctx))
	is.Equal("", FlowFileIDFromContext(context.Background()))
}

func TestContextWithProcessorID(t *testing.T) {
	is := is.New(t)

	ctx := ContextWithProcessorID(context.Background(), "rating.translate")

	is.Equal("rating.translate", ProcessorIDFromContext(ctx))
	is.Equal("", ProcessorIDFromContext(context.Background()))
}

func TestLogCtxHooks(t *testing.T) {
	flowFileID := uuid.NewString()

	testCases := []struct {
		name string
		ctx  context.Context
		hook zerolog.Hook
		want string
	}{{
		name: "flow file ID",
		ctx:  ContextWithFlowFileID(context.Background(), flowFileID),
		hook: FlowFileIDLogCtxHook{},
		want: fmt.Sprintf(`{"level":"info","%s":"%s"}`, log.FlowFileIDField, flowFileID) + "\n",
	}, {
		name: "flow file ID missing",
		ctx:  context.Background(),
		hook: FlowFileIDLogCtxHook{},
		want: `{"level":"info"}` + "\n",
	}, {
		name: "processor ID",
		ctx:  ContextWithProcessorID(context.Background(), "translate"),
		hook: ProcessorIDLogCtxHook{},
		want: fmt.Sprintf(`{"level":"info","%s":"translate"}`, log.ProcessorIDField) + "\n",
	}, {
		name: "processor ID missing",
		ctx:  context.Background(),
		hook: ProcessorIDLogCtxHook{},
		want: `{"level":"info"}` + "\n",
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)

			var out bytes.Buffer
			logger := zerolog.New(&out)
			e := logger.Info().Ctx(tc.ctx)
			tc.hook.Run(e, zerolog.InfoLevel, "")
			e.Send()

			is.Equal(tc.want, out.String())
		})
	}
}
