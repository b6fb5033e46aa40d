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
	"fmt"

	"github.com/conduitio/conduit-processor-sdk"
	"github.com/conduitio/conduit-rating-translator/cmd/rating-translator/internal"
	"github.com/conduitio/conduit-rating-translator/pkg/foundation/cerrors"
	"github.com/conduitio/ecdysis"
)

var (
	_ ecdysis.CommandWithExecute = (*DescribeCommand)(nil)
	_ ecdysis.CommandWithAliases = (*DescribeCommand)(nil)
	_ ecdysis.CommandWithDocs    = (*DescribeCommand)(nil)
	_ ecdysis.CommandWithArgs    = (*DescribeCommand)(nil)
	_ ecdysis.CommandWithOutput  = (*DescribeCommand)(nil)
)

type DescribeArgs struct {
	processorName string
}

type DescribeCommand struct {
	args   DescribeArgs
	output ecdysis.Output
}

func (c *DescribeCommand) Output(output ecdysis.Output) {
	c.output = output
}

func (c *DescribeCommand) Usage() string { return "describe <processor>[@<version>]" }

func (c *DescribeCommand) Docs() ecdysis.Docs {
	return ecdysis.Docs{
		Short:   "Describe a builtin processor and its parameters.",
		Example: "rating-translator processors describe rating.translate\nrating-translator processors desc rating.translate@v0.1.0",
	}
}

func (c *DescribeCommand) Aliases() []string { return []string{"desc"} }

func (c *DescribeCommand) Args(args []string) error {
	if len(args) == 0 {
		return cerrors.Errorf("requires a processor name")
	}

	if len(args) > 1 {
		return cerrors.Errorf("too many arguments")
	}

	c.args.processorName = args[0]
	return nil
}

func (c *DescribeCommand) Execute(ctx context.Context) error {
	p, err := newRegistry().NewProcessor(ctx, c.args.processorName, c.args.processorName)
	if err != nil {
		return cerrors.Errorf("failed to get processor: %w", err)
	}
	spec, err := p.Specification()
	if err != nil {
		return cerrors.Errorf("failed to get processor specification: %w", err)
	}

	displayProcessorDescription(c.output, spec)
	return nil
}

func displayProcessorDescription(out ecdysis.Output, s sdk.Specification) {
	if !internal.IsEmpty(s.Name) {
		out.Stdout(fmt.Sprintf("Name: %s\n", s.Name))
	}
	if !internal.IsEmpty(s.Summary) {
		out.Stdout(fmt.Sprintf("Summary: %s\n", s.Summary))
	}
	if !internal.IsEmpty(s.Description) {
		out.Stdout(fmt.Sprintf("Description: %s\n", internal.FormatLongString(s.Description, 100)))
	}
	if !internal.IsEmpty(s.Author) {
		out.Stdout(fmt.Sprintf("Author: %s\n", s.Author))
	}
	if !internal.IsEmpty(s.Version) {
		out.Stdout(fmt.Sprintf("Version: %s\n", s.Version))
	}

	if len(s.Parameters) > 0 {
		out.Stdout("Parameters:\n")
		out.Stdout(internal.ConfigParamsTable(s.Parameters) + "\n")
	}
}
