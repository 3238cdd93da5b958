package mimetypes

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed mimetypes.yaml
var registryFile embed.FS

// Registry maps file extensions to MIME types. Upload handlers consult
// it when a client did not declare a content type; the table ships
// embedded so the binary has no runtime file dependency.
type Registry struct {
	defaultType string
	byExtension map[string]string
}

type registryFileFormat struct {
	Default    string            `yaml:"default"`
	Extensions map[string]string `yaml:"extensions"`
}

// NewRegistry loads the embedded MIME table
func NewRegistry() (*Registry, error) {
	data, err := registryFile.ReadFile("mimetypes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read mimetypes.yaml: %w", err)
	}

	var table registryFileFormat
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mimetypes.yaml: %w", err)
	}
	if table.Default == "" {
		return nil, fmt.Errorf("mimetypes.yaml: missing default type")
	}

	byExt := make(map[string]string, len(table.Extensions))
	for ext, mime := range table.Extensions {
		byExt[strings.ToLower(ext)] = mime
	}

	return &Registry{
		defaultType: table.Default,
		byExtension: byExt,
	}, nil
}

// ForFilename returns the MIME type for a filename's extension, falling
// back to the registry default for unknown or missing extensions.
func (r *Registry) ForFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mime, ok := r.byExtension[ext]; ok {
		return mime
	}
	return r.defaultType
}

// Default returns the fallback MIME type.
func (r *Registry) Default() string {
	return r.defaultType
}
