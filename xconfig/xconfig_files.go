package xconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

func loadFromFiles(config any, filenames []string, strict bool) error {
	for _, filename := range filenames {
		if err := loadFromFile(config, filename, strict); err != nil {
			return fmt.Errorf("failed to load file %s: %w", filename, err)
		}
	}
	return nil
}

func loadFromFile(config any, filename string, strict bool) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return unmarshalYAML(data, config, strict)
	case ".toml":
		return unmarshalTOML(data, config, strict)
	default:
		return fmt.Errorf("unsupported file extension %s for file %s", ext, filename)
	}
}

func unmarshalYAML(data []byte, config any, strict bool) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.KnownFields(true)
	}
	return dec.Decode(config)
}

// unmarshalTOML re-encodes the document as YAML, so TOML files share the
// yaml keys and decoding rules of the config struct.
func unmarshalTOML(data []byte, config any, strict bool) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return err
	}
	converted, err := yaml.Marshal(tree.ToMap())
	if err != nil {
		return fmt.Errorf("failed to convert toml: %w", err)
	}
	return unmarshalYAML(converted, config, strict)
}
