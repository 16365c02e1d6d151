// Package registry loads the live command table exported by the host
// console. Consoles export in different serializations depending on version,
// so JSON, YAML and TOML payloads are all accepted.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Command is one live entry: a display name (possibly empty), the owning set
// identifier in textual form, and the integer command id.
type Command struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Owner string `json:"owner" yaml:"owner" toml:"owner"`
	ID    int64  `json:"id" yaml:"id" toml:"id"`
}

type export struct {
	Commands []Command `json:"commands" yaml:"commands" toml:"commands"`
}

// Load reads a host command export. The format is chosen by file extension:
// .json, .yaml/.yml or .toml.
func Load(path string) ([]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read command export: %w", err)
	}

	var ex export
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &ex)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ex)
	case ".toml":
		err = toml.Unmarshal(data, &ex)
	default:
		return nil, fmt.Errorf("unsupported command export format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode command export %s: %w", path, err)
	}
	return ex.Commands, nil
}
