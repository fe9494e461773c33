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

// runCLI executes the root command against a config path that does not exist,
// so every run starts from the default settings.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), configFileName)

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath, "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCompareCommand(t *testing.T) {
	out, err := runCLI(t, "compare", "10", "20", "30", "--search", "20", "--search", "99")
	require.NoError(t, err)

	assert.Contains(t, out, "AVL in order: 10 20 30")
	assert.Contains(t, out, "search 20")
	assert.Contains(t, out, "search 99")
	assert.Contains(t, out, "LL=0 RR=1 LR=0 RL=0")
}

func TestCompareCommandKeysFlagAndShape(t *testing.T) {
	out, err := runCLI(t, "compare", "--keys", "3,1,2", "--shape")
	require.NoError(t, err)

	assert.Contains(t, out, "BST in order: 1 2 3")
	assert.Contains(t, out, "AVL shape:")
	assert.Contains(t, out, "search 60")
}

func TestCompareCommandStringKeys(t *testing.T) {
	out, err := runCLI(t, "--type", "string", "compare", "kiwi", "--keys", "apple 'passion fruit'", "--search", "apple")
	require.NoError(t, err)
	assert.Contains(t, out, "AVL in order: apple kiwi passion fruit")
}

func TestCompareCommandSearchKeepsEachValueWhole(t *testing.T) {
	out, err := runCLI(t, "--type", "string", "compare", "passion fruit", "kiwi", "--search", "passion fruit")
	require.NoError(t, err)
	assert.Contains(t, out, "search passion fruit")
	assert.NotContains(t, out, "search fruit")
	assert.NotContains(t, out, "not found")

	out, err = runCLI(t, "--type", "string", "compare", "o'neil", "--search", "o'neil")
	require.NoError(t, err)
	assert.Contains(t, out, "search o'neil")
	assert.NotContains(t, out, "not found")

	out, err = runCLI(t, "compare", "10", "20", "30", "--search", "20,30")
	require.NoError(t, err)
	assert.Contains(t, out, "search 20")
	assert.Contains(t, out, "search 30")
}

func TestCompareCommandErrors(t *testing.T) {
	_, err := runCLI(t, "compare")
	assert.ErrorContains(t, err, "no keys given")

	_, err = runCLI(t, "compare", "1", "x")
	assert.ErrorContains(t, err, "invalid integer key")

	_, err = runCLI(t, "--type", "float", "compare", "1")
	assert.Error(t, err)
}

func TestScenariosCommand(t *testing.T) {
	for _, args := range [][]string{nil, {"scenarios"}} {
		out, err := runCLI(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "Crescente")
		assert.Contains(t, out, "Decrescente")
		assert.Contains(t, out, "Aleatório")
		assert.Contains(t, out, "search 20")
		assert.Contains(t, out, "search 60")
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := runCLI(t, "render", "--keys", "10,20,30")
	require.NoError(t, err)
	assert.Contains(t, out, "BST (height 3)")
	assert.Contains(t, out, "AVL (height 2)")

	out, err = runCLI(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

func TestBenchCommand(t *testing.T) {
	out, err := runCLI(t, "bench", "--size", "2000", "--no-progress", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "keys:            2,000")
	assert.Contains(t, out, "treecmp_inserts_total")
	assert.Contains(t, out, "treecmp_tree_height")

	_, err = runCLI(t, "bench", "--size", "20", "--max-key", "10")
	assert.Error(t, err)
}

func TestSettingsCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), configFileName)

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--no-color", "settings"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, cfgPath)
	assert.Contains(t, out.String(), "scenarios:")

	_, err := os.Stat(cfgPath)
	require.NoError(t, err)
}

func TestVersionAndUsageCommands(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)

	out, err = runCLI(t, "usage")
	require.NoError(t, err)
	assert.Contains(t, out, "treecmp")
}
