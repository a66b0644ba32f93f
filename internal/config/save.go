package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileHeader = `# formatfield configuration.
# Each entry under fields is one formatted input. Rules are applied in
# order on every edit; run "formatfield rules" for the full list.
`

// WriteDefaultConfig writes the default configuration to path, creating
// parent directories as needed.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	return os.WriteFile(path, append([]byte(fileHeader), data...), 0o644)
}

// SaveFields replaces the fields section of the config file at path,
// preserving any other settings already in the file.
func SaveFields(path string, fields []FieldConfig) error {
	doc := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing existing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	doc["fields"] = fields

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
