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

package internal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexeyco/simpletable"
	"github.com/conduitio/conduit-commons/config"
)

func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FormatLongString splits a string into multiple lines depending on the maxLineLength.
func FormatLongString(paragraph string, maxLineLength int) string {
	if len(paragraph) <= maxLineLength {
		return paragraph
	}

	var result strings.Builder
	var currentLine strings.Builder
	for _, word := range strings.Fields(paragraph) {
		if currentLine.Len() > 0 && currentLine.Len()+len(word)+1 > maxLineLength {
			result.WriteString(currentLine.String() + "\n")
			currentLine.Reset()
		}
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}
	result.WriteString(currentLine.String())

	return result.String()
}

// ConfigParamsTable renders processor parameters as a table, required
// parameters first, each group sorted by name.
func ConfigParamsTable(params config.Parameters) string {
	table := simpletable.New()

	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "NAME"},
			{Align: simpletable.AlignCenter, Text: "TYPE"},
			{Align: simpletable.AlignCenter, Text: "DESCRIPTION"},
			{Align: simpletable.AlignCenter, Text: "DEFAULT"},
			{Align: simpletable.AlignCenter, Text: "VALIDATIONS"},
		},
	}

	var required, other []string
	for name, param := range params {
		if isRequired(param.Validations) {
			required = append(required, name)
		} else {
			other = append(other, name)
		}
	}
	slices.Sort(required)
	slices.Sort(other)

	for _, name := range append(required, other...) {
		param := params[name]
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: name},
			{Align: simpletable.AlignLeft, Text: formatType(param.Type)},
			{Align: simpletable.AlignLeft, Text: FormatLongString(param.Description, 100)},
			{Align: simpletable.AlignLeft, Text: param.Default},
			{Align: simpletable.AlignLeft, Text: formatValidations(param.Validations)},
		})
	}

	table.SetStyle(simpletable.StyleCompact)
	return table.String()
}

func formatType(t config.ParameterType) string {
	switch t {
	case config.ParameterTypeString:
		return "string"
	case config.ParameterTypeInt:
		return "int"
	case config.ParameterTypeFloat:
		return "float"
	case config.ParameterTypeBool:
		return "bool"
	case config.ParameterTypeFile:
		return "file"
	case config.ParameterTypeDuration:
		return "duration"
	default:
		return "unknown"
	}
}

func formatValidationType(t config.ValidationType) string {
	switch t {
	case config.ValidationTypeRequired:
		return "required"
	case config.ValidationTypeGreaterThan:
		return "greater-than"
	case config.ValidationTypeLessThan:
		return "less-than"
	case config.ValidationTypeInclusion:
		return "inclusion"
	case config.ValidationTypeExclusion:
		return "exclusion"
	case config.ValidationTypeRegex:
		return "regex"
	default:
		return "unknown"
	}
}

func isRequired(validations []config.Validation) bool {
	for _, v := range validations {
		if v.Type() == config.ValidationTypeRequired {
			return true
		}
	}
	return false
}

func formatValidations(v []config.Validation) string {
	var result strings.Builder
	for _, validation := range v {
		if result.Len() > 0 {
			result.WriteString(", ")
		}
		formattedType := formatValidationType(validation.Type())
		value := validation.Value()
		if value == "" {
			fmt.Fprintf(&result, "[%s]", formattedType)
		} else {
			fmt.Fprintf(&result, "[%s=%s]", formattedType, value)
		}
	}
	return result.String()
}
