/*
Copyright 2026 the PetFriends API Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public PetFriends deployment.
	DefaultBaseURL = "https://petfriends.skillfactory.ru"

	// DefaultPhotoDir is relative to the test/api/suites directory.
	DefaultPhotoDir = "../../testdata/images"

	// Credentials used against the fake service when none are configured.
	defaultFakeEmail    = "tester@petfriends.test"
	defaultFakePassword = "correct-horse-battery-staple"
)

type TestConfig struct {
	BaseURL         string
	Email           string
	Password        string
	RequestTimeout  time.Duration
	PhotoDir        string
	UseFakeServer   bool
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         getStringWithDefault("PETFRIENDS_BASE_URL", DefaultBaseURL),
		Email:           os.Getenv("PETFRIENDS_EMAIL"),
		Password:        os.Getenv("PETFRIENDS_PASSWORD"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		PhotoDir:        getStringWithDefault("TEST_PHOTO_DIR", DefaultPhotoDir),
		UseFakeServer:   getBoolWithDefault("USE_FAKE_SERVER", false),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.UseFakeServer {
		if config.Email == "" {
			config.Email = defaultFakeEmail
		}

		if config.Password == "" {
			config.Password = defaultFakePassword
		}
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// PhotoPath resolves a fixture file name against the configured photo directory.
func (c *TestConfig) PhotoPath(name string) string {
	return filepath.Join(c.PhotoDir, name)
}

func getStringWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",    // From test/api directory
	}

	var envPath string
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := []struct {
		envVar string
		value  string
	}{
		{"PETFRIENDS_BASE_URL", config.BaseURL},
		{"PETFRIENDS_EMAIL", config.Email},
		{"PETFRIENDS_PASSWORD", config.Password},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s. Please set these environment variables, add them to test/.env, or set USE_FAKE_SERVER=true", strings.Join(missing, ", "))
	}

	return nil
}
