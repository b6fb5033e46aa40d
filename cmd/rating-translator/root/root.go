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

package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/conduitio/conduit-rating-translator/cmd/rating-translator/root/initialize"
	"github.com/conduitio/conduit-rating-translator/cmd/rating-translator/root/processors"
	"github.com/conduitio/conduit-rating-translator/cmd/rating-translator/root/run"
	"github.com/conduitio/conduit-rating-translator/cmd/rating-translator/root/version"
	"github.com/conduitio/conduit-rating-translator/pkg/translator"
	"github.com/conduitio/ecdysis"
)

var (
	_ ecdysis.CommandWithFlags       = (*RootCommand)(nil)
	_ ecdysis.CommandWithExecute     = (*RootCommand)(nil)
	_ ecdysis.CommandWithDocs        = (*RootCommand)(nil)
	_ ecdysis.CommandWithSubCommands = (*RootCommand)(nil)
)

type RootFlags struct {
	Version bool `long:"version" short:"v" usage:"show current version" persistent:"true"`
}

type RootCommand struct {
	flags RootFlags
	out   io.Writer
}

func (c *RootCommand) Execute(ctx context.Context) error {
	if c.flags.Version {
		_, _ = fmt.Fprintf(c.stdout(), "%s\n", translator.Version(true))
		return nil
	}

	if cmd := ecdysis.CobraCmdFromContext(ctx); cmd != nil {
		return cmd.Help()
	}
	return nil
}

func (c *RootCommand) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

func (c *RootCommand) Usage() string { return "rating-translator" }

func (c *RootCommand) Flags() []ecdysis.Flag {
	return ecdysis.BuildFlags(&c.flags)
}

func (c *RootCommand) Docs() ecdysis.Docs {
	return ecdysis.Docs{
		Short: "Rating translator",
		Long: `Rating translator runs rating documents through the rating.translate processor
and reports the flow files transferred to each relationship.`,
	}
}

func (c *RootCommand) SubCommands() []ecdysis.Command {
	return []ecdysis.Command{
		&initialize.InitCommand{},
		&processors.ProcessorsCommand{},
		&run.RunCommand{},
		&version.VersionCommand{},
	}
}
