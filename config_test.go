// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
	assert.Len(t, config.Scenarios, 3)
	assert.Equal(t, "20 60", config.SearchKeys)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
key_type: string
search_keys: "kiwi 'passion fruit'"
scenarios:
  - name: fruit
    keys: "kiwi apple fig"
bench:
  size: 500
log:
  level: debug
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, KeyTypeString, config.KeyType)
	assert.Equal(t, []ScenarioConfig{{Name: "fruit", Keys: "kiwi apple fig"}}, config.Scenarios)
	assert.Equal(t, 500, config.Bench.Size)
	assert.Equal(t, "debug", config.Log.Level)

	// untouched fields keep their defaults
	assert.Equal(t, defaultConfig().Bench.MaxBSTSize, config.Bench.MaxBSTSize)
	assert.True(t, config.Report.Color)
}

func TestLoadConfigErrorsFallBackToDefaults(t *testing.T) {
	testCases := []struct {
		Name string
		Body string
	}{
		{Name: "Broken YAML", Body: "scenarios: [unclosed"},
		{Name: "Unknown key type", Body: "key_type: float"},
		{Name: "Unnamed scenario", Body: "scenarios:\n  - keys: \"1 2\""},
		{Name: "Size above key range", Body: "bench:\n  size: 20\n  max_key: 10"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			config, err := LoadConfig(writeConfig(t, tc.Body))
			assert.Error(t, err)
			require.NotNil(t, config)
			assert.Equal(t, defaultConfig(), *config)
		})
	}
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)

	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path))
	assert.Contains(t, out.String(), "newly created")
	assert.Contains(t, out.String(), "Crescente")
	assert.FileExists(t, path)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)

	out.Reset()
	require.NoError(t, displaySettings(&out, path))
	assert.NotContains(t, out.String(), "newly created")
}
