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

var _ = Describe("Core Pet Management", func() {
	var key string

	BeforeEach(func() {
		key = api.AcquireAPIKey(client, ctx, config)
	})

	Context("When listing pets", func() {
		Describe("Given at least one pet exists", func() {
			var petID string

			BeforeEach(func() {
				_, petID = api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())
			})

			It("should return a non-empty list of all pets", func() {
				resp, err := client.ListPets(ctx, key, api.FilterAll)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Pets()).NotTo(BeEmpty())
			})

			It("should include the caller's pet in my_pets", func() {
				pets := api.ListOwnPets(client, ctx, key)
				api.VerifyPetPresence(pets, petID)
			})
		})
	})

	Context("When creating a new pet", func() {
		Describe("Given valid data with a photo", func() {
			It("should successfully create the pet", func() {
				pet, _ := api.CreatePetWithCleanup(client, ctx, key,
					api.NewPetPayload().
						WithName("Барсик").
						WithAnimalType("Деревенский").
						WithAge("7").
						WithPhoto(config.PhotoPath("cat.jpg")).
						Build())

				Expect(pet).To(HaveKeyWithValue("name", "Барсик"))
				Expect(pet).To(HaveKeyWithValue("animal_type", "Деревенский"))
				Expect(pet["pet_photo"]).NotTo(BeEmpty())
			})
		})

		Describe("Given valid data without a photo", func() {
			It("should create the pet with an empty photo", func() {
				pet, _ := api.CreatePetWithCleanup(client, ctx, key,
					api.NewPetPayload().
						WithName("Кот№13").
						WithAnimalType("просто_тип").
						WithAge("9").
						Build())

				Expect(pet).To(HaveKeyWithValue("name", "Кот№13"))
				Expect(pet).To(HaveKeyWithValue("pet_photo", ""))
			})
		})
	})

	Context("When updating a pet", func() {
		Describe("Given the caller owns the pet", func() {
			It("should reflect the new details", func() {
				petID := api.EnsureOwnPet(client, ctx, key)

				resp, err := client.UpdatePet(ctx, key, petID, "Пушок", "Серый", "4")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Body).To(HaveKeyWithValue("name", "Пушок"))
				Expect(resp.Body).To(HaveKeyWithValue("id", petID))
			})
		})
	})

	Context("When deleting a pet", func() {
		Describe("Given the caller owns the pet", func() {
			It("should successfully delete the pet", func() {
				petID := api.EnsureOwnPet(client, ctx, key)

				resp, err := client.DeletePet(ctx, key, petID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				api.VerifyPetAbsence(api.ListOwnPets(client, ctx, key), petID)
			})
		})

		Describe("Given an empty identifier", func() {
			It("should reject the request with a client error", func() {
				resp, err := client.DeletePet(ctx, key, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusNotFound))
			})
		})
	})

	Context("When setting a pet photo", func() {
		Describe("Given an image file", func() {
			It("should store the photo", func() {
				_, petID := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())

				resp, err := client.UploadPhoto(ctx, key, petID, config.PhotoPath("cat.jpg"))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				photo, ok := resp.StringField("pet_photo")
				Expect(ok).To(BeTrue())
				Expect(photo).NotTo(BeEmpty())
			})
		})

		Describe("Given a file that is not an image", func() {
			It("should reject the upload", func() {
				_, petID := api.CreatePetWithCleanup(client, ctx, key, api.NewPetPayload().Build())

				resp, err := client.UploadPhoto(ctx, key, petID, config.PhotoPath("cat.doc"))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
			})
		})
	})
})
