package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is the dataset schema loaded from schema.yaml. It drives required
// column enforcement after merge and after registry construction.
type Schema struct {
	Tables map[string]SchemaTable `yaml:"tables"`
}

// SchemaTable declares the columns of one output table.
type SchemaTable struct {
	Columns map[string]SchemaColumn `yaml:"columns"`
}

// SchemaColumn carries per-column metadata.
type SchemaColumn struct {
	Required bool   `yaml:"required"`
	Type     string `yaml:"type"`
}

// LoadSchema reads schema.yaml from path.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return s, nil
}

// RequiredColumns returns the required column names for a table. Unknown
// tables yield an empty list; enforcement then has nothing to substitute.
func (s *Schema) RequiredColumns(tableName string) []string {
	var required []string
	for name, meta := range s.Tables[tableName].Columns {
		if meta.Required {
			required = append(required, name)
		}
	}
	return required
}
