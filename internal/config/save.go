package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns the file the config was loaded from. Configs that were not
// loaded from a file report DefaultPath.
func (c *Config) Path() string {
	if c.source == "" {
		return DefaultPath()
	}
	return c.source
}

// SaveTools records tool window visibility in the config file at Path and
// returns that path. Only overlay.tools is written; the rest of the file is
// kept as it is, so flag overrides never end up on disk. A tool that a flag
// opened keeps its file value unless the user closed it.
func (c *Config) SaveTools(tools ToolsConfig) (string, error) {
	if c.forced.Metrics && tools.Metrics {
		tools.Metrics = c.fileTools.Metrics
	}

	path := c.Path()
	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return path, fmt.Errorf("reading %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return path, err
	}

	overlay, _ := doc["overlay"].(map[string]any)
	if overlay == nil {
		overlay = map[string]any{}
	}
	overlay["tools"] = tools
	doc["overlay"] = overlay

	return path, writeYAML(path, doc)
}

// SaveTo writes the whole config to a specific path.
func (c *Config) SaveTo(path string) error {
	return writeYAML(path, c)
}

func writeYAML(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
