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

// Package rating translates rating documents into the flattened structure
// consumed downstream.
//
// The input has the shape
//
//	{"rating": {"primary": {"value": 4.5}, "cleanliness": {"value": 5}}}
//
// and is translated into
//
//	{
//	    "Range": 5,
//	    "Rating": 4.5,
//	    "SecondaryRatings": {
//	        "cleanliness": {"Id": "cleanliness", "Range": 5, "Value": 5}
//	    }
//	}
package rating

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/goccy/go-json"
)

const (
	// Range is the upper bound of every rating scale.
	Range = 5
	// PrimaryKey is the key of the overall rating inside the rating object.
	PrimaryKey = "primary"
	// FilenameSuffix replaces everything after the first dot of a filename.
	FilenameSuffix = "_translated.json"

	ratingKey = "rating"
	valueKey  = "value"
	indent    = "    "
)

// Document is the translated rating document.
type Document struct {
	Range            int                        `json:"Range"`
	Rating           json.RawMessage            `json:"Rating"`
	SecondaryRatings map[string]SecondaryRating `json:"SecondaryRatings"`
}

// SecondaryRating is a single non-primary rating. ID equals the key the
// rating was found under.
type SecondaryRating struct {
	ID    string          `json:"Id"`
	Range int             `json:"Range"`
	Value json.RawMessage `json:"Value"`
}

// Transform parses a rating document and returns its translation serialized
// with 4-space indentation. Values are copied verbatim, so numbers keep their
// exact literal form. The returned error is a *TransformError matching either
// ErrParse or ErrSchema, in which case no output is returned.
func Transform(in []byte) ([]byte, error) {
	doc, err := Translate(in)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, cerrors.Errorf("failed to marshal translated document: %w", err)
	}
	return out, nil
}

// Translate parses a rating document and returns its translation without
// serializing it.
func Translate(in []byte) (Document, error) {
	if !utf8.Valid(in) {
		return Document{}, parseError(cerrors.New("input is not valid UTF-8"))
	}
	if !json.Valid(in) {
		err := json.Unmarshal(in, new(any))
		if err == nil {
			err = cerrors.New("input is not valid JSON")
		}
		return Document{}, parseError(err)
	}

	root, err := decodeObject(in, "")
	if err != nil {
		return Document{}, err
	}
	rating, err := lookupObject(root, ratingKey, ratingKey)
	if err != nil {
		return Document{}, err
	}

	primary, err := lookupValue(rating, PrimaryKey, ratingKey+"."+PrimaryKey)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Range:            Range,
		Rating:           primary,
		SecondaryRatings: make(map[string]SecondaryRating, len(rating)-1),
	}
	// sorted keys make the reported error deterministic
	for _, key := range slices.Sorted(maps.Keys(rating)) {
		if key == PrimaryKey {
			continue
		}
		v, err := lookupValue(rating, key, ratingKey+"."+key)
		if err != nil {
			return Document{}, err
		}
		doc.SecondaryRatings[key] = SecondaryRating{
			ID:    key,
			Range: Range,
			Value: v,
		}
	}

	return doc, nil
}

// RenameFilename truncates name at its first dot and appends FilenameSuffix.
// A name without a dot is used as a whole.
func RenameFilename(name string) string {
	base, _, _ := strings.Cut(name, ".")
	return base + FilenameSuffix
}

// lookupValue expects obj[key] to be an object containing the key "value"
// and returns the raw value. A JSON null is a valid value.
func lookupValue(obj map[string]json.RawMessage, key, path string) (json.RawMessage, error) {
	entry, err := lookupObject(obj, key, path)
	if err != nil {
		return nil, err
	}
	v, ok := entry[valueKey]
	if !ok {
		return nil, schemaError(path+"."+valueKey, errMissingKey)
	}
	if len(v) == 0 {
		v = json.RawMessage("null")
	}
	return v, nil
}

func lookupObject(obj map[string]json.RawMessage, key, path string) (map[string]json.RawMessage, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, schemaError(path, errMissingKey)
	}
	return decodeObject(raw, path)
}

func decodeObject(raw []byte, path string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, schemaError(path, errNotObject)
	}
	return obj, nil
}
