// Package directory holds the reference list of public services that is seeded
// into the services table on first start.
package directory

import (
	_ "embed"
	"fmt"
	"os"

	"civicflow/backend/models"

	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var defaultServices []byte

type file struct {
	Services []models.Service `yaml:"services"`
}

// Default returns the built-in directory.
func Default() ([]models.Service, error) {
	return Parse(defaultServices)
}

// Load reads a directory file, or the built-in one when path is empty.
func Load(path string) ([]models.Service, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read services file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]models.Service, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse services file: %w", err)
	}
	for i, s := range f.Services {
		if s.Name == "" || s.LocationContext == "" {
			return nil, fmt.Errorf("service #%d: name and location_context are required", i+1)
		}
	}
	return f.Services, nil
}
