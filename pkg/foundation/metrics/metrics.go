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

// Package metrics defines metrics independent of the backend collecting them.
// Metrics are declared once as package level variables and forwarded to every
// registered Registry.
package metrics

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Registry is an object that can create and collect metrics.
type Registry interface {
	NewCounter(name, help string, opts ...Option) Counter
	NewLabeledCounter(name, help string, labels []string, opts ...Option) LabeledCounter
	NewTimer(name, help string, opts ...Option) Timer
	NewHistogram(name, help string, opts ...Option) Histogram
}

// Option is an option that can be applied on a metric. Registry implementations
// define their own option types and ignore options meant for others.
type Option interface{}

// Counter is a metric that can only increment its current count.
type Counter interface {
	// Inc adds Sum(vs) to the counter. Sum(vs) must be positive.
	//
	// If len(vs) == 0, increments the counter by 1.
	Inc(vs ...float64)
}

// LabeledCounter is a counter that must have labels populated before use.
type LabeledCounter interface {
	WithValues(vs ...string) Counter
}

// Timer collects the duration of an action in seconds.
type Timer interface {
	Update(time.Duration)
	// UpdateSince records the duration elapsed since t.
	UpdateSince(t time.Time)
}

// Histogram is a metric that builds a histogram from observed values.
type Histogram interface {
	Observe(float64)
}

var global = struct {
	mu         sync.Mutex
	metrics    []metric
	registries []Registry
}{}

// Register adds r to the global registries. Metrics created before or after
// the call are created in r as well. The returned function removes r again,
// after it returns r doesn't receive any more updates.
func Register(r Registry) (unregister func()) {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.registries = append(global.registries, r)
	for _, mt := range global.metrics {
		mt.add(r)
	}

	var once sync.Once
	return func() {
		once.Do(func() { unregisterRegistry(r) })
	}
}

func unregisterRegistry(r Registry) {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.registries = slices.DeleteFunc(global.registries, func(other Registry) bool {
		return other == r
	})
	for _, mt := range global.metrics {
		mt.remove(r)
	}
}

func NewCounter(name, help string, opts ...Option) Counter {
	mt := &counter{}
	mt.create = func(r Registry) Counter { return r.NewCounter(name, help, opts...) }
	addMetric(mt)
	return mt
}

func NewLabeledCounter(name, help string, labels []string, opts ...Option) LabeledCounter {
	mt := &labeledCounter{}
	mt.create = func(r Registry) LabeledCounter { return r.NewLabeledCounter(name, help, labels, opts...) }
	addMetric(mt)
	return mt
}

func NewTimer(name, help string, opts ...Option) Timer {
	mt := &timer{}
	mt.create = func(r Registry) Timer { return r.NewTimer(name, help, opts...) }
	addMetric(mt)
	return mt
}

func NewHistogram(name, help string, opts ...Option) Histogram {
	mt := &histogram{}
	mt.create = func(r Registry) Histogram { return r.NewHistogram(name, help, opts...) }
	addMetric(mt)
	return mt
}

type metric interface {
	add(Registry)
	remove(Registry)
}

type instance[T any] struct {
	registry Registry
	metric   T
}

// fanout keeps one instance of a metric per registry. Instances are replaced
// copy-on-write, updates read them without locking.
type fanout[T any] struct {
	create    func(Registry) T
	instances atomic.Pointer[[]instance[T]]
}

func (f *fanout[T]) add(r Registry) {
	updated := append(slices.Clip(f.load()), instance[T]{registry: r, metric: f.create(r)})
	f.instances.Store(&updated)
}

func (f *fanout[T]) remove(r Registry) {
	updated := slices.DeleteFunc(slices.Clone(f.load()), func(i instance[T]) bool {
		return i.registry == r
	})
	f.instances.Store(&updated)
}

func (f *fanout[T]) load() []instance[T] {
	if p := f.instances.Load(); p != nil {
		return *p
	}
	return nil
}

func (f *fanout[T]) each(fn func(T)) {
	for _, i := range f.load() {
		fn(i.metric)
	}
}

func addMetric(mt metric) {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.metrics = append(global.metrics, mt)
	for _, r := range global.registries {
		mt.add(r)
	}
}

type counter struct {
	fanout[Counter]
}

func (mt *counter) Inc(vs ...float64) {
	mt.each(func(c Counter) { c.Inc(vs...) })
}

type labeledCounter struct {
	fanout[LabeledCounter]
}

// WithValues returns a counter bound to the registries known at the time of
// the call.
func (mt *labeledCounter) WithValues(vs ...string) Counter {
	var counters counterSet
	mt.each(func(lc LabeledCounter) { counters = append(counters, lc.WithValues(vs...)) })
	return counters
}

type counterSet []Counter

func (cs counterSet) Inc(vs ...float64) {
	for _, c := range cs {
		c.Inc(vs...)
	}
}

type timer struct {
	fanout[Timer]
}

func (mt *timer) Update(d time.Duration) {
	mt.each(func(t Timer) { t.Update(d) })
}

func (mt *timer) UpdateSince(t time.Time) {
	mt.Update(time.Since(t))
}

type histogram struct {
	fanout[Histogram]
}

func (mt *histogram) Observe(v float64) {
	mt.each(func(h Histogram) { h.Observe(v) })
}
