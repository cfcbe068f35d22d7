package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type document struct {
	Airports   []Airport          `yaml:"airports"`
	Routes     []Route            `yaml:"routes"`
	HubDetails map[string]HubInfo `yaml:"hubDetails"`
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Airports, doc.Routes, doc.HubDetails)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return Parse(embedded)
}

// Open picks the catalog source: a MySQL DSN first, then a YAML file, then
// the embedded catalog.
func Open(ctx context.Context, file, dsn string) (*Catalog, error) {
	switch {
	case dsn != "":
		return LoadMySQL(ctx, dsn)
	case file != "":
		return LoadFile(file)
	}
	return Embedded()
}
