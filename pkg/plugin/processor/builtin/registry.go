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
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	sdk "github.com/conduitio/conduit-processor-sdk"
	"github.com/conduitio/conduit-processor-sdk/pprocutils"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/ctxutil"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/log"
	"github.com/conduitio/conduit-rating-translator/pkg/plugin/processor/builtin/impl/rating"
)

const versionLatest = "latest"

var ErrProcessorNotFound = cerrors.New("processor not found")

var DefaultBuiltinProcessors = map[string]ProcessorPluginConstructor{
	"rating.translate": rating.NewTranslateProcessor,
}

type Registry struct {
	logger log.CtxLogger

	// plugins stores processor blueprints in a 2D map, first key is the
	// processor name, the second key is the processor version
	plugins map[string]map[string]blueprint
}

type blueprint struct {
	specification sdk.Specification
	constructor   ProcessorPluginConstructor
}

type ProcessorPluginConstructor func(log.CtxLogger) sdk.Processor

func NewRegistry(
	logger log.CtxLogger,
	constructors map[string]ProcessorPluginConstructor,
) *Registry {
	// set logger for builtin processors
	pprocutils.Logger = logger.WithComponent("processor").
		ZerologWithComponent().
		Hook(ctxutil.ProcessorIDLogCtxHook{}).
		Hook(ctxutil.FlowFileIDLogCtxHook{})

	logger = logger.WithComponent("plugin.processor.builtin.Registry")
	r := &Registry{
		plugins: loadPlugins(constructors),
		logger:  logger,
	}
	logger.Debug(context.Background()).Int("count", len(r.List())).Msg("builtin processors initialized")
	return r
}

func loadPlugins(constructors map[string]ProcessorPluginConstructor) map[string]map[string]blueprint {
	plugins := make(map[string]map[string]blueprint, len(constructors))
	for name, constructor := range constructors {
		specs, err := constructor(log.Nop()).Specification()
		if err != nil {
			// stop initialization if a built-in processor is misbehaving
			panic(cerrors.Errorf("failed to get specification of %q: %w", name, err))
		}

		versionMap := plugins[specs.Name]
		if versionMap == nil {
			versionMap = make(map[string]blueprint)
			plugins[specs.Name] = versionMap
		}
		if _, ok := versionMap[specs.Version]; ok {
			panic(cerrors.Errorf("processor %q already registered", specs.Name+"@"+specs.Version))
		}

		bp := blueprint{
			constructor:   constructor,
			specification: specs,
		}
		versionMap[specs.Version] = bp

		latestBp, ok := versionMap[versionLatest]
		if !ok || versionGreaterThan(specs.Version, latestBp.specification.Version) {
			versionMap[versionLatest] = bp
		}
	}
	return plugins
}

// NewProcessor creates a new instance of the processor referenced by
// fullName, which is the processor name optionally followed by "@" and a
// version (e.g. "rating.translate@v0.1.0"). The latest version is used if the
// version is omitted. The returned processor attaches id to the context of
// every call.
func (r *Registry) NewProcessor(_ context.Context, fullName string, id string) (sdk.Processor, error) {
	name, version, ok := strings.Cut(fullName, "@")
	if !ok || version == "" {
		version = versionLatest
	}

	versionMap, ok := r.plugins[name]
	if !ok {
		return nil, cerrors.Errorf("%q: %w", name, ErrProcessorNotFound)
	}
	b, ok := versionMap[version]
	if !ok {
		availableVersions := make([]string, 0, len(versionMap))
		for k := range versionMap {
			if k != versionLatest {
				availableVersions = append(availableVersions, k)
			}
		}
		slices.Sort(availableVersions)
		return nil, cerrors.Errorf("could not find builtin processor %q, only found versions %v: %w", fullName, availableVersions, ErrProcessorNotFound)
	}

	p := b.constructor(r.logger)
	// attach processor ID for logs
	return newProcessorWithID(p, id), nil
}

// List returns the specifications of all registered processors keyed by
// name@version.
func (r *Registry) List() map[string]sdk.Specification {
	specs := make(map[string]sdk.Specification, len(r.plugins))
	for name, versions := range r.plugins {
		for version, bp := range versions {
			if version == versionLatest {
				continue // skip latest versions
			}
			specs[name+"@"+version] = bp.specification
		}
	}
	return specs
}

func versionGreaterThan(leftVersion, rightVersion string) bool {
	leftSemver, err := semver.NewVersion(leftVersion)
	if err != nil {
		return false // left is an invalid semver, right is greater either way
	}
	rightSemver, err := semver.NewVersion(rightVersion)
	if err != nil {
		return true // left is a valid semver, right is not, left is greater
	}

	return leftSemver.GreaterThan(rightSemver)
}
