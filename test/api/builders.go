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
	"time"

	"k8s.io/utils/ptr"
)

// PetPayload holds the fields of a create request. Photo is a path to a local
// file, nil when the pet is created without one.
type PetPayload struct {
	Name       string
	AnimalType string
	Age        string
	Photo      *string
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload PetPayload
}

// NewPetPayload creates a new pet payload builder with a unique name and no photo.
func NewPetPayload() *PetPayloadBuilder {
	timestamp := time.Now().Format("20060102-150405.000")

	return &PetPayloadBuilder{
		payload: PetPayload{
			Name:       fmt.Sprintf("testautomation-%s", timestamp),
			AnimalType: "кот",
			Age:        "3",
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.payload.AnimalType = animalType
	return b
}

// WithAge sets the age. Any string is accepted, including empty and negative values.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.payload.Age = age
	return b
}

// WithPhoto attaches the photo at path.
func (b *PetPayloadBuilder) WithPhoto(path string) *PetPayloadBuilder {
	b.payload.Photo = ptr.To(path)
	return b
}

// WithoutPhoto removes any photo.
func (b *PetPayloadBuilder) WithoutPhoto() *PetPayloadBuilder {
	b.payload.Photo = nil
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() PetPayload {
	return b.payload
}
