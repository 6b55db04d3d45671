package route

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a descriptor file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// document is the object form of a descriptor file.
type document struct {
	Routes []Descriptor `json:"routes" yaml:"routes"`
}

// FormatForPath picks the encoding from a file extension.
// Unknown extensions are treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads descriptors from a JSON or YAML file.
func LoadFile(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	routes, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return routes, nil
}

// Parse decodes descriptors. Both a bare list and an object with a "routes"
// key are accepted. Empty input yields an empty list.
func Parse(data []byte, format Format) ([]Descriptor, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Descriptor{}, nil
	}

	var (
		routes []Descriptor
		err    error
	)
	switch format {
	case FormatYAML:
		routes, err = parseYAML(data)
	default:
		routes, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	if routes == nil {
		routes = []Descriptor{}
	}
	for i := range routes {
		if routes[i].Dynamic == nil {
			routes[i].Dynamic = []string{}
		}
	}
	return routes, nil
}

func parseJSON(data []byte) ([]Descriptor, error) {
	if data[0] == '[' {
		var routes []Descriptor
		if err := json.Unmarshal(data, &routes); err != nil {
			return nil, fmt.Errorf("decode descriptors: %w", err)
		}
		return routes, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode descriptors: %w", err)
	}
	return doc.Routes, nil
}

func parseYAML(data []byte) ([]Descriptor, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode descriptors: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var routes []Descriptor
		if err := root.Decode(&routes); err != nil {
			return nil, fmt.Errorf("decode descriptors: %w", err)
		}
		return routes, nil
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode descriptors: %w", err)
	}
	return doc.Routes, nil
}
