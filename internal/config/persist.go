package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Save writes the configuration to path as YAML
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeFile(path, data)
}

// Set stores a single dotted key in the YAML file at path, keeping every other
// value already in the file. The value is decoded as a YAML scalar so that
// "true" becomes a bool and "8080" an int.
func Set(path, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if !slices.Contains(KnownKeys(), key) {
		return fmt.Errorf("unknown config key: %s", key)
	}

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	var typed any
	if err := yaml.Unmarshal([]byte(value), &typed); err != nil || typed == nil {
		typed = value
	}

	parts := strings.Split(key, ".")
	node := doc
	for _, p := range parts[:len(parts)-1] {
		child, ok := node[p].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[p] = child
		}
		node = child
	}
	node[parts[len(parts)-1]] = typed

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeFile(path, out)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
