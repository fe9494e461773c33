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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".treecmp.yaml"

type ScenarioConfig struct {
	Name string `yaml:"name"`
	Keys string `yaml:"keys"`
}

type BenchConfig struct {
	Size        int    `yaml:"size"`
	Seed        uint64 `yaml:"seed"`
	MaxKey      int    `yaml:"max_key"`
	MaxBSTSize  int    `yaml:"max_bst_size"`
	BloomBits   uint   `yaml:"bloom_bits"`
	BloomHashes uint   `yaml:"bloom_hashes"`
	Progress    bool   `yaml:"progress"`
}

type ReportConfig struct {
	Color     bool `yaml:"color"`
	ShowShape bool `yaml:"show_shape"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	KeyType    KeyType          `yaml:"key_type"`
	SearchKeys string           `yaml:"search_keys"`
	Scenarios  []ScenarioConfig `yaml:"scenarios"`
	Bench      BenchConfig      `yaml:"bench"`
	Report     ReportConfig     `yaml:"report"`
	Log        LogConfig        `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		KeyType:    KeyTypeInt,
		SearchKeys: "20 60",
		Scenarios: []ScenarioConfig{
			{Name: "Crescente", Keys: "10 20 30 40 50"},
			{Name: "Decrescente", Keys: "50 40 30 20 10"},
			{Name: "Aleatório", Keys: "30 10 50 20 40 70"},
		},
		Bench: BenchConfig{
			Size:        100_000,
			Seed:        1,
			MaxKey:      10_000_000,
			MaxBSTSize:  100_000,
			BloomBits:   1 << 22,
			BloomHashes: 5,
			Progress:    true,
		},
		Report: ReportConfig{
			Color:     true,
			ShowShape: false,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// LoadConfig reads the YAML config at path. A missing file yields the defaults
// without error; a broken one yields the defaults together with the error so
// the caller can warn and carry on.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// unmarshal over the defaults so unset fields keep them
	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if _, err := ParseKeyType(string(c.KeyType)); err != nil {
		return err
	}
	for i, sc := range c.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
	}
	if c.Bench.Size < 0 || c.Bench.MaxBSTSize < 0 {
		return errors.New("bench sizes must not be negative")
	}
	if c.Bench.MaxKey > 0 && c.Bench.Size > c.Bench.MaxKey {
		return fmt.Errorf("bench size %d exceeds max_key %d", c.Bench.Size, c.Bench.MaxKey)
	}
	return nil
}

func getConfigPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// displaySettings prints the active configuration, writing the default file
// first when none exists.
func displaySettings(w io.Writer, path string) error {
	created := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 treecmp configuration\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s%s%s %s(newly created)%s\n\n", Info, path, Reset, Green, Reset)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s%s%s\n\n", Info, path, Reset)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
