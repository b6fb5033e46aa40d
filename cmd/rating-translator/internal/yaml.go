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
	"io"
	"strings"

	"github.com/conduitio/yaml/v3"
)

// YAMLTree is a YAML document built from dotted key paths. Values can carry
// a comment that is written above their key.
type YAMLTree struct {
	Root *yaml.Node
}

func NewYAMLTree() *YAMLTree {
	return &YAMLTree{
		Root: &yaml.Node{
			Kind: yaml.MappingNode,
		},
	}
}

// Insert adds the value under the dotted path, creating intermediate mappings
// as needed. Inserting an existing path keeps the first value.
func (t *YAMLTree) Insert(path, value, comment string) {
	parts := strings.Split(path, ".")
	current := t.Root

	for i, part := range parts {
		isLast := i == len(parts)-1

		valueNode := lookup(current, part)
		if valueNode == nil {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: part}
			if isLast && comment != "" {
				keyNode.HeadComment = "# " + comment
			}
			valueNode = &yaml.Node{Kind: yaml.MappingNode}
			if isLast {
				valueNode = &yaml.Node{Kind: yaml.ScalarNode, Value: value}
			}
			current.Content = append(current.Content, keyNode, valueNode)
		}
		current = valueNode
	}
}

// Encode writes the tree as YAML indented with 2 spaces.
func (t *YAMLTree) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Root); err != nil {
		return err
	}
	return enc.Close()
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
