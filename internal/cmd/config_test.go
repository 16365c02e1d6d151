package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigInitFormats(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "cmdgen."+format)
			c := &ConfigInit{Format: format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Contains(t, string(data), "generate")
			assert.Contains(t, string(data), "namespace")
		})
	}
}

func TestConfigInitDefaults(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "cmdgen.yaml")
	c := &ConfigInit{Format: "yaml", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var root map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &root))
	gen := root["generate"]
	assert.Equal(t, "all", gen["lang"])
	assert.Equal(t, "Host.Client.Commands", gen["namespace"])
	// The registry positional argument has no config form.
	assert.NotContains(t, gen, "registry")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "cmdgen.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	c := &ConfigInit{Format: "json", Output: dest}
	err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force")

	c.Force = true
	require.NoError(t, c.Run())
}
