// Copyright 2025 go-cpulab Authors
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

// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the lab runners and the CLI.
type Config struct {
	Seed      uint64 // 0 seeds from the clock
	Workers   int    // 0 means GOMAXPROCS
	Parallel  bool   // use the row-parallel kernels
	NoSimd    bool   // force scalar dispatch
	LogLevel  string
	LogFormat string // "text" or "json"
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads envFiles (".env" when none are given) into the process
// environment without overriding variables that are already set, then builds
// a Config from the environment. Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment.
func FromEnv() *Config {
	def := Default()
	return &Config{
		Seed:      getEnvAsUint64("CPULAB_SEED", def.Seed),
		Workers:   getEnvAsInt("CPULAB_WORKERS", def.Workers),
		Parallel:  getEnvAsBool("CPULAB_PARALLEL", def.Parallel),
		NoSimd:    getEnvAsBool("CPULAB_NO_SIMD", def.NoSimd),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", def.LogLevel)),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", def.LogFormat)),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
