package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads an ordered taxonomy from a YAML file. The file holds a
// list of categories; list order is preserved and becomes the tie-break
// order, so the file format is a sequence, not a mapping.
func LoadFromFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	t, err := New(categories)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy in %s: %w", path, err)
	}
	return t, nil
}

// SaveToFile writes the taxonomy as a YAML sequence, usable as a starting
// point for a customized taxonomy file.
func (t *Taxonomy) SaveToFile(path string) error {
	data, err := yaml.Marshal(t.categories)
	if err != nil {
		return fmt.Errorf("failed to marshal taxonomy: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write taxonomy file: %w", err)
	}
	return nil
}
