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
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// KeyType selects how key words are interpreted.
type KeyType string

const (
	KeyTypeInt    KeyType = "int"
	KeyTypeString KeyType = "string"
)

func ParseKeyType(s string) (KeyType, error) {
	switch KeyType(strings.ToLower(s)) {
	case KeyTypeInt, "":
		return KeyTypeInt, nil
	case KeyTypeString:
		return KeyTypeString, nil
	}
	return "", fmt.Errorf("unknown key type %q (want int or string)", s)
}

// splitKeys breaks a key list into words with shell quoting rules, so string
// keys containing spaces can be written as "new york".
func splitKeys(list string) ([]string, error) {
	words, err := shellwords.Parse(list)
	if err != nil {
		return nil, fmt.Errorf("failed to parse key list %q: %w", list, err)
	}
	return words, nil
}

// collectKeys merges positional arguments with a --keys style list.
func collectKeys(args []string, list string) ([]string, error) {
	words := append([]string{}, args...)
	if list == "" {
		return words, nil
	}
	more, err := splitKeys(list)
	if err != nil {
		return nil, err
	}
	return append(words, more...), nil
}

// parseIntKeys accepts words like "10", "20,30" and "-5".
func parseIntKeys(words []string) ([]int, error) {
	keys := make([]int, 0, len(words))
	for _, w := range words {
		for _, part := range strings.Split(w, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			k, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid integer key %q: %w", part, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func parseStringKeys(words []string) ([]string, error) {
	return words, nil
}

func formatKeys[K cmp.Ordered](keys []K) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprint(k)
	}
	return out
}
