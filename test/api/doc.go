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

// Package api provides integration test utilities for the PetFriends API.
//
// # Client Behaviour
//
// APIClient is a stateless request/response facade. Every operation returns
// a Response holding the raw HTTP status code and the decoded JSON body, and
// only returns an error when the request could not be built or the transport
// failed. Status codes, including 4xx and 5xx, are data for the caller to
// assert on: the remote service owns the error taxonomy.
//
// Values such as ages and names are passed through unvalidated so the suites
// can probe how the service itself reacts to boundary input.
//
// # Test-Specific Features
//
//   - W3C trace context propagation for request correlation
//   - Request and response logging onto the Ginkgo writer
//   - Payload builders and fixtures with automatic cleanup
//   - An injectable transport so failures can be exercised with mocks
package api
