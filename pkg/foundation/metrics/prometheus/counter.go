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

package prometheus

import (
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// counter adapts a prometheus counter to metrics.Counter. The registry
// collects the underlying prometheus counter directly.
type counter struct {
	pc prometheus.Counter
}

func (c counter) Inc(vs ...float64) {
	if len(vs) == 0 {
		c.pc.Inc()
		return
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	c.pc.Add(sum)
}

type labeledCounter struct {
	pc *prometheus.CounterVec
}

func (lc labeledCounter) WithValues(vs ...string) metrics.Counter {
	return counter{pc: lc.pc.WithLabelValues(vs...)}
}
