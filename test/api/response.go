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
	"encoding/json"
	"fmt"
	"net/http"
)

// Filter scopes a pet listing.
type Filter string

const (
	// FilterAll lists every pet known to the service.
	FilterAll Filter = ""
	// FilterMyPets lists only pets owned by the authenticated caller.
	FilterMyPets Filter = "my_pets"
)

// Response is the uniform envelope returned by every client operation.
type Response struct {
	// StatusCode is the raw HTTP status returned by the service.
	StatusCode int
	// Body is the decoded JSON object, or nil when the body was empty
	// or not a JSON object.
	Body map[string]interface{}
	// Text is the raw response body.
	Text string
}

func newResponse(statusCode int, raw []byte) *Response {
	r := &Response{
		StatusCode: statusCode,
		Text:       string(raw),
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err == nil {
		r.Body = body
	}

	return r
}

// StringField returns a top level field rendered as a string, and whether it
// was present. Numbers are rendered without a trailing fraction where possible.
func (r *Response) StringField(name string) (string, bool) {
	if r.Body == nil {
		return "", false
	}

	value, ok := r.Body[name]
	if !ok || value == nil {
		return "", ok
	}

	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return fmt.Sprintf("%g", v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// Key returns the API key from an authentication response.
func (r *Response) Key() string {
	key, _ := r.StringField("key")

	return key
}

// Pets returns the pet records from a listing response. Entries that are not
// JSON objects are skipped.
func (r *Response) Pets() []map[string]interface{} {
	if r.Body == nil {
		return nil
	}

	raw, ok := r.Body["pets"].([]interface{})
	if !ok {
		return nil
	}

	pets := make([]map[string]interface{}, 0, len(raw))

	for _, item := range raw {
		if pet, ok := item.(map[string]interface{}); ok {
			pets = append(pets, pet)
		}
	}

	return pets
}

// IsClientError reports a 4xx status.
func (r *Response) IsClientError() bool {
	return r.StatusCode >= http.StatusBadRequest && r.StatusCode < http.StatusInternalServerError
}
