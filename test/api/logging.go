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
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/rs/zerolog"
)

// NewLogger returns a console logger that writes to the Ginkgo writer, so
// output is attached to the spec that produced it and only shown on failure
// or with -v.
func NewLogger(config *TestConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if config.DebugLogging {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        ginkgo.GinkgoWriter,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("component", "api-client").Logger()
}
