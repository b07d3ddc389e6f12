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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends-api-tests/test/api"
)

// The service performs no validation on these fields. The specs pin that
// behaviour and record each acceptance as a known defect in the report so a
// future fix on the service side shows up as a failure here.
var _ = Describe("Boundary Value Testing", func() {
	var key string

	BeforeEach(func() {
		key = api.AcquireAPIKey(client, ctx, config)
	})

	DescribeTable("When creating a pet with out of range input",
		func(name, animalType, age, defect string) {
			pet, _ := api.CreatePetWithCleanup(client, ctx, key,
				api.NewPetPayload().
					WithName(name).
					WithAnimalType(animalType).
					WithAge(age).
					WithPhoto(config.PhotoPath("cat.jpg")).
					Build())

			Expect(pet).To(HaveKeyWithValue("name", name))

			AddReportEntry("known defect", defect)
		},
		Entry("a negative age is accepted", "Рыжий", "африканец", "-3",
			"the service accepts a negative age"),
		Entry("an age above 100 is accepted", "Дружок", "сибирская", "700",
			"the service accepts an age above 100 years"),
		Entry("an empty age is accepted", "Киска", "московская", "",
			"the service accepts a pet without an age"),
		Entry("a name longer than 50 characters is accepted", strings.Repeat("q", 120), "Кот", "3",
			"the service accepts a name longer than 50 characters"),
	)

	Context("When filtering with an unsupported value", func() {
		It("should not return success", func() {
			resp, err := client.ListPets(ctx, key, api.Filter("everything"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
		})
	})
})
