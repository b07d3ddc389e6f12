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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// authKeyHeader carries the API key on every authenticated call.
	authKeyHeader = "auth_key"
)

type APIClient struct {
	baseURL   string
	client    Doer
	config    *TestConfig
	endpoints *Endpoints
	logger    zerolog.Logger
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL, &http.Client{Timeout: config.RequestTimeout})
}

// NewAPIClientWithDoer builds a client that sends requests through the given transport.
func NewAPIClientWithDoer(config *TestConfig, doer Doer) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL, doer)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string, doer Doer) *APIClient {
	return &APIClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    doer,
		config:    config,
		endpoints: NewEndpoints(),
		logger:    NewLogger(config),
	}
}

// createTraceParent creates a W3C traceparent header value.
// A fresh trace is started for every request so a failure can be located in
// the service logs.
func createTraceParent() string {
	traceID := uuid.New()
	spanID := uuid.New()

	return fmt.Sprintf("00-%s-%s-01", hex.EncodeToString(traceID[:]), hex.EncodeToString(spanID[:8]))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// request describes a single call. Extra headers are applied after the defaults.
type request struct {
	method      string
	path        string
	key         string
	query       url.Values
	headers     map[string]string
	body        io.Reader
	contentType string
}

func (c *APIClient) doRequest(ctx context.Context, r request) (*Response, error) {
	fullURL := c.baseURL + r.path
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, r.body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	if r.key != "" {
		req.Header.Set(authKeyHeader, r.key)
	}

	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	log := c.logger.With().
		Str("method", r.method).
		Str("path", r.path).
		Str("trace_id", extractTraceID(traceParent)).
		Logger()

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("duration", duration).Msg("http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode).Dur("duration", duration).Msg("reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		log.Info().Int("status", resp.StatusCode).Dur("duration", duration).Msg("request complete")
	}

	if c.config.LogResponses && len(respBody) > 0 {
		log.Info().Str("body", truncate(string(respBody), 512)).Msg("response body")
	}

	return newResponse(resp.StatusCode, respBody), nil
}

// truncate keeps photo data URIs from flooding the log.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}

func petForm(name, animalType, age string) url.Values {
	return url.Values{
		"name":        {name},
		"animal_type": {animalType},
		"age":         {age},
	}
}

// Authenticate exchanges credentials for an API key.
func (c *APIClient) Authenticate(ctx context.Context, email, password string) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method: http.MethodGet,
		path:   c.endpoints.APIKey(),
		headers: map[string]string{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	return resp, nil
}

// ListPets lists all pets, or only the caller's when filter is FilterMyPets.
func (c *APIClient) ListPets(ctx context.Context, key string, filter Filter) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method: http.MethodGet,
		path:   c.endpoints.ListPets(),
		key:    key,
		query:  url.Values{"filter": {string(filter)}},
	})
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	return resp, nil
}

// CreatePet creates a pet. With a photo the pet and photo are sent as one
// multipart request, without one the simple form endpoint is used and the
// service records an empty photo.
func (c *APIClient) CreatePet(ctx context.Context, key string, pet PetPayload) (*Response, error) {
	if pet.Photo == nil {
		return c.CreatePetSimple(ctx, key, pet.Name, pet.AnimalType, pet.Age)
	}

	body, contentType, err := newMultipartBody(petForm(pet.Name, pet.AnimalType, pet.Age), photoField, *pet.Photo)
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePet(),
		key:         key,
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return resp, nil
}

// CreatePetSimple creates a pet without a photo.
func (c *APIClient) CreatePetSimple(ctx context.Context, key, name, animalType, age string) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePetSimple(),
		key:         key,
		body:        strings.NewReader(petForm(name, animalType, age).Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return resp, nil
}

// UpdatePet replaces the name, type and age of an existing pet.
func (c *APIClient) UpdatePet(ctx context.Context, key, petID, name, animalType, age string) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPut,
		path:        c.endpoints.UpdatePet(petID),
		key:         key,
		body:        strings.NewReader(petForm(name, animalType, age).Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}

	return resp, nil
}

// DeletePet removes a pet. An empty or unknown identifier is sent as is.
func (c *APIClient) DeletePet(ctx context.Context, key, petID string) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method: http.MethodDelete,
		path:   c.endpoints.DeletePet(petID),
		key:    key,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting pet: %w", err)
	}

	return resp, nil
}

// UploadPhoto attaches or replaces a pet's photo. The file format is not
// checked locally.
func (c *APIClient) UploadPhoto(ctx context.Context, key, petID, photoPath string) (*Response, error) {
	body, contentType, err := newMultipartBody(nil, photoField, photoPath)
	if err != nil {
		return nil, fmt.Errorf("uploading photo: %w", err)
	}

	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPost,
		path:        c.endpoints.SetPhoto(petID),
		key:         key,
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading photo: %w", err)
	}

	return resp, nil
}
