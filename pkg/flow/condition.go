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

package flow

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/conduitio/conduit-commons/opencdc"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
)

// condition is a go template evaluated for each record, its output is parsed
// as a boolean.
type condition struct {
	condition string
	tmpl      *template.Template
}

// newCondition parses and returns the template. It returns nil if the
// condition is blank.
func newCondition(c string) (*condition, error) {
	if strings.TrimSpace(c) == "" {
		return nil, nil
	}
	tmpl, err := template.New("").Funcs(sprig.FuncMap()).Parse(c)
	if err != nil {
		return nil, cerrors.Errorf("failed to parse condition: %w", err)
	}
	return &condition{
		condition: c,
		tmpl:      tmpl,
	}, nil
}

// Evaluate executes the template for the provided record and parses the
// output into a boolean. It returns an error if the output is not a boolean.
func (c *condition) Evaluate(rec opencdc.Record) (bool, error) {
	var b bytes.Buffer
	err := c.tmpl.Execute(&b, rec)
	if err != nil {
		return false, cerrors.Errorf("failed to execute condition: %w", err)
	}
	output, err := strconv.ParseBool(strings.TrimSpace(b.String()))
	if err != nil {
		return false, cerrors.Errorf("error converting the condition go-template output to boolean, %w", err)
	}
	return output, nil
}
