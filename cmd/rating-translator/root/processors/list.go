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

package processors

import (
	"context"
	"maps"
	"slices"

	"github.com/alexeyco/simpletable"
	"github.com/conduitio/conduit-processor-sdk"
	"github.com/conduitio/ecdysis"
)

var (
	_ ecdysis.CommandWithExecute = (*ListCommand)(nil)
	_ ecdysis.CommandWithAliases = (*ListCommand)(nil)
	_ ecdysis.CommandWithDocs    = (*ListCommand)(nil)
	_ ecdysis.CommandWithOutput  = (*ListCommand)(nil)
)

type ListCommand struct {
	output ecdysis.Output
}

func (c *ListCommand) Output(output ecdysis.Output) {
	c.output = output
}

func (c *ListCommand) Docs() ecdysis.Docs {
	return ecdysis.Docs{
		Short:   "List the builtin processors",
		Example: "rating-translator processors list\nrating-translator processors ls",
	}
}

func (c *ListCommand) Aliases() []string { return []string{"ls"} }

func (c *ListCommand) Usage() string { return "list" }

func (c *ListCommand) Execute(_ context.Context) error {
	displayProcessors(c.output, newRegistry().List())
	return nil
}

func displayProcessors(out ecdysis.Output, specs map[string]sdk.Specification) {
	if len(specs) == 0 {
		return
	}

	table := simpletable.New()

	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "NAME"},
			{Align: simpletable.AlignCenter, Text: "VERSION"},
			{Align: simpletable.AlignCenter, Text: "SUMMARY"},
		},
	}

	for _, id := range slices.Sorted(maps.Keys(specs)) {
		s := specs[id]
		r := []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: s.Name},
			{Align: simpletable.AlignLeft, Text: s.Version},
			{Align: simpletable.AlignLeft, Text: s.Summary},
		}
		table.Body.Cells = append(table.Body.Cells, r)
	}
	table.SetStyle(simpletable.StyleCompact)
	out.Stdout(table.String() + "\n")
}
