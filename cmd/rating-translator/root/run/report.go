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

package run

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexeyco/simpletable"
	"github.com/conduitio/conduit-rating-translator/pkg/flow"
	"github.com/conduitio/conduit-rating-translator/pkg/translator"
)

var dashedLine = strings.Repeat("-", 57)

// printReport writes the flow files transferred to the configured
// relationships followed by a summary of all relationships.
func printReport(w io.Writer, cfg translator.Config, runner *flow.Runner) {
	for _, rel := range cfg.Relationships() {
		flowFiles := runner.FlowFilesForRelationship(rel)
		for _, ff := range flowFiles {
			if cfg.OutputAttributes() {
				printAttributes(w, ff)
			}
			if cfg.OutputContent() {
				_, _ = fmt.Fprintln(w, string(ff.Content()))
			}
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "Flow Files transferred to %s: %d\n\n", rel, len(flowFiles))
	}
	_, _ = fmt.Fprintln(w, summaryTable(runner))
}

func printAttributes(w io.Writer, ff flow.FlowFile) {
	var sb strings.Builder
	sb.WriteString("Flow file " + ff.ID + "\n" + dashedLine)
	sb.WriteString("\nFlowFile Attributes")
	writeKeyValue(&sb, "entryDate", ff.EntryDate.Format(time.UnixDate))
	writeKeyValue(&sb, "lineageStartDate", ff.LineageStartDate.Format(time.UnixDate))
	writeKeyValue(&sb, "fileSize", strconv.Itoa(ff.Size()))
	sb.WriteString("\nFlowFile Attribute Map Content")
	attrs := ff.Attributes()
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		writeKeyValue(&sb, k, attrs[k])
	}
	if ff.Err != nil {
		sb.WriteString("\nFlowFile Error")
		writeKeyValue(&sb, "error", ff.Err.Error())
	}
	sb.WriteString("\n" + dashedLine)
	_, _ = fmt.Fprintln(w, sb.String())
}

func writeKeyValue(sb *strings.Builder, key, value string) {
	fmt.Fprintf(sb, "\nKey: '%s'\n\tValue: '%s'", key, value)
}

func summaryTable(runner *flow.Runner) string {
	table := simpletable.New()

	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignCenter, Text: "RELATIONSHIP"},
			{Align: simpletable.AlignCenter, Text: "FLOW FILES"},
		},
	}

	counts := runner.Counts()
	for _, rel := range flow.Relationships() {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: rel.String()},
			{Align: simpletable.AlignRight, Text: strconv.Itoa(counts[rel])},
		})
	}
	table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
		{Align: simpletable.AlignLeft, Text: "filtered"},
		{Align: simpletable.AlignRight, Text: strconv.Itoa(runner.Filtered())},
	})

	table.SetStyle(simpletable.StyleCompact)
	return table.String()
}
