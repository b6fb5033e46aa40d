// Copyright © 2022 Meroxa, Inc.
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

package measure

import (
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics/prometheus"
)

// Any changes in metrics defined below should also be reflected in the README.
var (
	TranslatorInfo = metrics.NewLabeledCounter("rating_translator_info",
		"Information about the rating translator, incremented once per run.",
		[]string{"version"})

	FlowFilesCounter = metrics.NewLabeledCounter("rating_translator_flowfiles_total",
		"Number of flow files transferred by relationship.",
		[]string{"relationship"})

	FlowFileBytesHistogram = metrics.NewHistogram("rating_translator_flowfile_bytes",
		"Size of flow file content entering the processor.",
		// buckets from 128B to 256KiB
		prometheus.HistogramOpts{Buckets: []float64{128, 128 << 1, 128 << 2, 128 << 3, 128 << 4, 128 << 5, 128 << 6, 128 << 7, 128 << 8, 128 << 9, 128 << 10, 128 << 11}},
	)

	ProcessDurationTimer = metrics.NewTimer("rating_translator_process_duration_seconds",
		"Time the processor spent on a single flow file.",
		prometheus.HistogramOpts{Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}})
)
