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
	"sync"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// NewRegistry returns a registry that is responsible for managing a collection
// of metrics.
//
// Labels allows constant labels to be added to all metrics created in this
// registry, use them for labels that identify the whole run.
func NewRegistry(labels map[string]string) *Registry {
	return &Registry{
		labels: labels,
	}
}

// Registry describes a set of metrics. It implements metrics.Registry as well
// as prometheus.Collector and can thus be used as an adapter to collect
// translator metrics and deliver them to the prometheus client.
type Registry struct {
	labels  map[string]string
	mu      sync.Mutex
	metrics []prometheus.Collector
}

var (
	_ metrics.Registry     = (*Registry)(nil)
	_ prometheus.Collector = (*Registry)(nil)
)

func (r *Registry) NewCounter(name, help string, opts ...metrics.Option) metrics.Counter {
	pc := prometheus.NewCounter(r.newCounterOpts(name, help, opts))
	r.add(pc)
	return counter{pc: pc}
}

func (r *Registry) NewLabeledCounter(name, help string, labels []string, opts ...metrics.Option) metrics.LabeledCounter {
	pc := prometheus.NewCounterVec(r.newCounterOpts(name, help, opts), labels)
	r.add(pc)
	return labeledCounter{pc: pc}
}

func (r *Registry) newCounterOpts(name, help string, opts []metrics.Option) prometheus.CounterOpts {
	promOpts := prometheus.CounterOpts{
		Name:        name,
		Help:        help,
		ConstLabels: r.labels,
	}
	for _, mopt := range opts {
		if opt, ok := mopt.(counterOption); ok {
			promOpts = opt.applyCounter(promOpts)
		}
	}
	return promOpts
}

func (r *Registry) NewTimer(name, help string, opts ...metrics.Option) metrics.Timer {
	return timer{histogram: r.newHistogram(name, help, opts)}
}

func (r *Registry) NewHistogram(name, help string, opts ...metrics.Option) metrics.Histogram {
	return r.newHistogram(name, help, opts)
}

func (r *Registry) newHistogram(name, help string, opts []metrics.Option) histogram {
	ph := prometheus.NewHistogram(r.newHistogramOpts(name, help, opts))
	r.add(ph)
	return histogram{ph: ph}
}

func (r *Registry) newHistogramOpts(name, help string, opts []metrics.Option) prometheus.HistogramOpts {
	promOpts := prometheus.HistogramOpts{
		Name:        name,
		Help:        help,
		ConstLabels: r.labels,
	}
	for _, mopt := range opts {
		if opt, ok := mopt.(histogramOption); ok {
			promOpts = opt.applyHistogram(promOpts)
		}
	}
	return promOpts
}

func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, metric := range r.metrics {
		metric.Describe(ch)
	}
}

func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, metric := range r.metrics {
		metric.Collect(ch)
	}
}

func (r *Registry) add(collector prometheus.Collector) {
	r.mu.Lock()
	r.metrics = append(r.metrics, collector)
	r.mu.Unlock()
}
