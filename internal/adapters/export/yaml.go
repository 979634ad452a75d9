package export

import (
	"fmt"
	"io"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes a sequence of mappings whose keys keep field order
type YAMLEncoder struct{}

// Extension returns "yaml"
func (YAMLEncoder) Extension() string { return "yaml" }

// Encode writes rows as a YAML sequence
func (YAMLEncoder) Encode(w io.Writer, rows []domain.Row) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range row {
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
			)
		}
		doc.Content = append(doc.Content, mapping)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
