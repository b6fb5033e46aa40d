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

//go:generate paramgen -output=translate_paramgen.go translateConfig

package rating

import (
	"context"

	"github.com/conduitio/conduit-commons/config"
	"github.com/conduitio/conduit-commons/opencdc"
	sdk "github.com/conduitio/conduit-processor-sdk"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/log"
	"github.com/conduitio/conduit-rating-translator/pkg/rating"
	"github.com/goccy/go-json"
)

type translateProcessor struct {
	sdk.UnimplementedProcessor

	logger            log.CtxLogger
	referenceResolver sdk.ReferenceResolver
	config            translateConfig
}

func NewTranslateProcessor(logger log.CtxLogger) sdk.Processor {
	return &translateProcessor{logger: logger.WithComponent("processor.rating.translate")}
}

type translateConfig struct {
	// Field is a reference to the field containing the rating document. Only
	// fields that are under `.Key` and `.Payload` can be translated.
	//
	// For more information about the format, see [Referencing fields](https://conduit.io/docs/using/processors/referencing-fields).
	Field string `json:"field" default:".Payload.After" validate:"regex=^\\.(Payload|Key).*,exclusion=.Payload"`
	// FilenameKey is the metadata key of the filename attribute. Its value is
	// truncated at the first dot and suffixed with `_translated.json`.
	FilenameKey string `json:"filenameKey" default:"filename"`
	// RequireFilename makes records without the filename attribute fail. When
	// false, such records are translated and the attribute is left unset.
	RequireFilename bool `json:"requireFilename" default:"false"`
}

func (p *translateProcessor) Specification() (sdk.Specification, error) {
	return sdk.Specification{
		Name:    "rating.translate",
		Summary: "Translates a rating document into the flattened rating structure.",
		Description: `The processor reads a JSON rating document of the form
` + "`{\"rating\": {\"primary\": {\"value\": 4.5}, \"<name>\": {\"value\": 3}}}`" + `
from the target field and replaces it with a document that promotes the primary
value to ` + "`Rating`" + `, adds the constant ` + "`Range`" + ` of 5 and re-keys every other
rating into ` + "`SecondaryRatings`" + ` with the shape ` + "`{\"Id\", \"Range\", \"Value\"}`" + `.

The output is raw JSON indented with 4 spaces. The filename metadata attribute
is truncated at its first dot and suffixed with ` + "`_translated.json`" + `.

Records that are not valid JSON, or lack the ` + "`rating`" + `, ` + "`rating.primary`" + ` or
any ` + "`value`" + ` key, are returned as errors.`,
		Version:    "v0.1.0",
		Author:     "Meroxa, Inc.",
		Parameters: translateConfig{}.Parameters(),
	}, nil
}

func (p *translateProcessor) Configure(ctx context.Context, c config.Config) error {
	cfg := translateConfig{}
	err := sdk.ParseConfig(ctx, c, &cfg, translateConfig{}.Parameters())
	if err != nil {
		return cerrors.Errorf("failed to parse configuration: %w", err)
	}
	resolver, err := sdk.NewReferenceResolver(cfg.Field)
	if err != nil {
		return cerrors.Errorf(`failed to parse the "field" parameter: %w`, err)
	}
	p.referenceResolver = resolver
	p.config = cfg
	return nil
}

func (p *translateProcessor) Process(ctx context.Context, records []opencdc.Record) []sdk.ProcessedRecord {
	out := make([]sdk.ProcessedRecord, 0, len(records))
	for _, record := range records {
		rec := record
		if err := p.translate(ctx, &rec); err != nil {
			return append(out, sdk.ErrorRecord{Error: err})
		}
		out = append(out, sdk.SingleRecord(rec))
	}
	return out
}

func (p *translateProcessor) translate(ctx context.Context, rec *opencdc.Record) error {
	filename, hasFilename := rec.Metadata[p.config.FilenameKey]
	if !hasFilename && p.config.RequireFilename {
		return cerrors.Errorf("metadata field %q not found", p.config.FilenameKey)
	}

	ref, err := p.referenceResolver.Resolve(rec)
	if err != nil {
		return err
	}

	switch d := ref.Get().(type) {
	case string:
		translated, err := rating.Transform([]byte(d))
		if err != nil {
			return err
		}
		err = ref.Set(string(translated))
		if err != nil {
			return err
		}
	case []byte:
		translated, err := rating.Transform(d)
		if err != nil {
			return err
		}
		err = ref.Set(translated)
		if err != nil {
			return err
		}
	default:
		raw, err := p.rawData(d)
		if err != nil {
			return err
		}
		translated, err := rating.Transform(raw)
		if err != nil {
			return err
		}
		err = ref.Set(opencdc.RawData(translated))
		if err != nil {
			return err
		}
	}

	if hasFilename {
		rec.Metadata[p.config.FilenameKey] = rating.RenameFilename(filename)
		p.logger.Trace(ctx).
			Str(log.FilenameField, rec.Metadata[p.config.FilenameKey]).
			Msg("renamed filename attribute")
	}
	return nil
}

func (p *translateProcessor) rawData(data any) ([]byte, error) {
	switch d := data.(type) {
	case opencdc.RawData:
		return d.Bytes(), nil
	case opencdc.StructuredData, map[string]any:
		raw, err := json.Marshal(d)
		if err != nil {
			return nil, cerrors.Errorf("failed to marshal structured data as JSON: %w", err)
		}
		return raw, nil
	case nil:
		return nil, nil
	default:
		return nil, cerrors.Errorf("unexpected data type %T", data)
	}
}
