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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends-api-tests/test/api"
)

var _ = Describe("Security and Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				resp, err := client.Authenticate(ctx, config.Email, config.Password)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Body).To(HaveKey("key"))
				Expect(resp.Key()).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			It("should reject an unknown email", func() {
				resp, err := client.Authenticate(ctx, "email", config.Password)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Key()).To(BeEmpty())
			})

			It("should reject a wrong password", func() {
				resp, err := client.Authenticate(ctx, config.Email, "1234567890")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Key()).To(BeEmpty())
			})
		})
	})

	Context("When accessing pets without a valid key", func() {
		It("should reject listing with an invalid key", func() {
			resp, err := client.ListPets(ctx, "not-a-real-key", api.FilterAll)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
		})
	})
})
