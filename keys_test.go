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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKeys(t *testing.T) {
	words, err := splitKeys(`10 20  "new york" 'a b'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "new york", "a b"}, words)

	_, err = splitKeys(`"unterminated`)
	assert.Error(t, err)
}

func TestCollectKeys(t *testing.T) {
	words, err := collectKeys([]string{"1", "2"}, "3 4")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, words)

	words, err = collectKeys(nil, "")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestParseIntKeys(t *testing.T) {
	keys, err := parseIntKeys([]string{"10,20", "-5", ",30,", "40"})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, -5, 30, 40}, keys)

	_, err = parseIntKeys([]string{"10", "ten"})
	assert.ErrorContains(t, err, `invalid integer key "ten"`)
}

func TestParseKeyType(t *testing.T) {
	testCases := []struct {
		In   string
		Want KeyType
		Err  bool
	}{
		{In: "", Want: KeyTypeInt},
		{In: "int", Want: KeyTypeInt},
		{In: "STRING", Want: KeyTypeString},
		{In: "float", Err: true},
	}
	for _, tc := range testCases {
		got, err := ParseKeyType(tc.In)
		if tc.Err {
			assert.Error(t, err, tc.In)
			continue
		}
		require.NoError(t, err, tc.In)
		assert.Equal(t, tc.Want, got, tc.In)
	}
}

func TestFormatKeys(t *testing.T) {
	assert.Equal(t, []string{"1", "-2"}, formatKeys([]int{1, -2}))
	assert.Empty(t, formatKeys[string](nil))
}
