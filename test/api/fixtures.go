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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
)

// AcquireAPIKey authenticates with the configured credentials and fails the
// spec unless a key is returned.
func AcquireAPIKey(client *APIClient, ctx context.Context, config *TestConfig) string {
	resp, err := client.Authenticate(ctx, config.Email, config.Password)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "authentication failed: %s", resp.Text)

	key := resp.Key()
	Expect(key).NotTo(BeEmpty(), "authentication response carried no key")

	return key
}

// CreatePetWithCleanup creates a pet and schedules its deletion when the spec ends.
func CreatePetWithCleanup(client *APIClient, ctx context.Context, key string, payload PetPayload) (map[string]interface{}, string) {
	resp, err := client.CreatePet(ctx, key, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "creating pet failed: %s", resp.Text)

	petID, ok := resp.StringField("id")
	Expect(ok).To(BeTrue(), "create response carried no id")
	Expect(petID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created pet with ID: %s\n", petID)

	// Runs whether the spec passes or fails. A spec that already deleted the
	// pet will see a 404 here, which is fine.
	DeferCleanup(func() {
		resp, deleteErr := client.DeletePet(ctx, key, petID)

		switch {
		case deleteErr != nil:
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, deleteErr)
		case resp.StatusCode == http.StatusOK:
			GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
		default:
			GinkgoWriter.Printf("Pet %s not deleted during cleanup (status: %d)\n", petID, resp.StatusCode)
		}
	})

	return resp.Body, petID
}

// EnsureOwnPet returns the identifier of the newest pet owned by the caller,
// creating one with cleanup when the caller has none.
func EnsureOwnPet(client *APIClient, ctx context.Context, key string) string {
	pets := ListOwnPets(client, ctx, key)
	if len(pets) > 0 {
		return PetIDs(pets)[0]
	}

	_, petID := CreatePetWithCleanup(client, ctx, key, NewPetPayload().Build())

	return petID
}

// ListOwnPets lists the caller's pets and fails the spec on a non-200 status.
func ListOwnPets(client *APIClient, ctx context.Context, key string) []map[string]interface{} {
	resp, err := client.ListPets(ctx, key, FilterMyPets)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "listing own pets failed: %s", resp.Text)

	return resp.Pets()
}

// PetIDs extracts pet identifiers in listing order. Records without a string id are skipped.
func PetIDs(pets []map[string]interface{}) []string {
	ids := make([]string, 0, len(pets))

	for _, pet := range pets {
		if id, ok := pet["id"].(string); ok {
			ids = append(ids, id)
		}
	}

	return ids
}

// VerifyPetPresence verifies that pets are present in the list.
func VerifyPetPresence(pets []map[string]interface{}, expectedPetIDs ...string) {
	petIDs := PetIDs(pets)
	for _, expectedID := range expectedPetIDs {
		Expect(petIDs).To(ContainElement(expectedID), "Expected pet ID %s to be present in the list", expectedID)
	}
}

// VerifyPetAbsence verifies that none of the pets are present in the list.
func VerifyPetAbsence(pets []map[string]interface{}, unexpectedPetIDs ...string) {
	listed := set.New[string](PetIDs(pets)...)
	unexpected := set.New[string](unexpectedPetIDs...)

	var found []string
	for id := range listed.Intersection(unexpected).All() {
		found = append(found, id)
	}

	Expect(found).To(BeEmpty(), "Expected pet IDs to be absent from the list")
}
