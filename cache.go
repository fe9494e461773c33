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
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Reports only need to live for one command invocation or explorer session
	reportCacheExpiration = 10 * time.Minute
	reportCacheCleanup    = 5 * time.Minute
)

// NewReportCache creates the cache shared by scenario runs.
func NewReportCache() *cache.Cache {
	return cache.New(reportCacheExpiration, reportCacheCleanup)
}

// reportCacheKey identifies a run by what determines its outcome. The
// scenario name is not part of it.
func reportCacheKey(keyType KeyType, keys, search []string) string {
	return string(keyType) + "\x1f" + strings.Join(keys, "\x1e") + "\x1f" + strings.Join(search, "\x1e")
}

// canonicalKeys spells int keys the way a report prints them, so "010" and
// "10,20" share an entry with "10" and "10 20". Words that do not parse are
// left alone for buildReport to reject.
func canonicalKeys(keyType KeyType, words []string) []string {
	if keyType == KeyTypeString {
		return words
	}
	keys, err := parseIntKeys(words)
	if err != nil {
		return words
	}
	return formatKeys(keys)
}

func CacheReport(c *cache.Cache, key string, r Report) {
	c.Set(key, r, reportCacheExpiration)
}

func GetReport(c *cache.Cache, key string) (Report, bool) {
	val, ok := c.Get(key)
	if !ok {
		return Report{}, false
	}
	r, ok := val.(Report)
	return r, ok
}

// GetOrBuildReport returns a cached report for the same input under the new
// name, or builds and caches one.
func GetOrBuildReport(c *cache.Cache, name string, keyType KeyType, keys, search []string) (Report, error) {
	key := reportCacheKey(keyType, canonicalKeys(keyType, keys), canonicalKeys(keyType, search))
	if r, ok := GetReport(c, key); ok {
		logger.Debug().Str("scenario", name).Str("cached_as", r.Name).Msg("reusing report")
		r.Name = name
		return r, nil
	}

	r, err := buildReport(name, keyType, keys, search)
	if err != nil {
		return Report{}, err
	}
	CacheReport(c, key, r)
	return r, nil
}
