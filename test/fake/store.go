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

package fake

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrPetNotFound is returned when no pet has the requested identifier.
	ErrPetNotFound = errors.New("pet with this id wasn't found")

	// ErrNotOwner is returned when the caller does not own the pet.
	ErrNotOwner = errors.New("pet belongs to another user")
)

// Pet is the service's view of a pet record.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	Photo      string `json:"pet_photo"`
	UserID     string `json:"user_id"`
	CreatedAt  string `json:"created_at"`
}

// PetFields are the mutable, caller supplied fields of a pet.
type PetFields struct {
	Name       string
	AnimalType string
	Age        string
}

// Store is an in-memory pet store. The zero value is not usable, use NewStore.
type Store struct {
	lock sync.RWMutex
	pets map[string]*Pet
	// order holds identifiers oldest first.
	order []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		pets: map[string]*Pet{},
	}
}

// newID returns identifiers shaped like the service's, dashless hex.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Create adds a pet owned by userID.
func (s *Store) Create(userID string, fields PetFields, photo string) Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet := &Pet{
		ID:         newID(),
		Name:       fields.Name,
		AnimalType: fields.AnimalType,
		Age:        fields.Age,
		Photo:      photo,
		UserID:     userID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}

	s.pets[pet.ID] = pet
	s.order = append(s.order, pet.ID)

	return *pet
}

// List returns pets newest first, limited to userID's when it is not empty.
func (s *Store) List(userID string) []Pet {
	s.lock.RLock()
	defer s.lock.RUnlock()

	pets := make([]Pet, 0, len(s.order))

	for _, id := range slices.Backward(s.order) {
		pet := s.pets[id]
		if userID != "" && pet.UserID != userID {
			continue
		}

		pets = append(pets, *pet)
	}

	return pets
}

// owned returns the pet if userID owns it. The caller must hold the lock.
func (s *Store) owned(userID, id string) (*Pet, error) {
	pet, ok := s.pets[id]
	if !ok {
		return nil, ErrPetNotFound
	}

	if pet.UserID != userID {
		return nil, ErrNotOwner
	}

	return pet, nil
}

// Update replaces the fields of a pet owned by userID.
func (s *Store) Update(userID, id string, fields PetFields) (Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet, err := s.owned(userID, id)
	if err != nil {
		return Pet{}, err
	}

	pet.Name = fields.Name
	pet.AnimalType = fields.AnimalType
	pet.Age = fields.Age

	return *pet, nil
}

// SetPhoto replaces the photo of a pet owned by userID.
func (s *Store) SetPhoto(userID, id, photo string) (Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	pet, err := s.owned(userID, id)
	if err != nil {
		return Pet{}, err
	}

	pet.Photo = photo

	return *pet, nil
}

// Delete removes a pet owned by userID.
func (s *Store) Delete(userID, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.owned(userID, id); err != nil {
		return err
	}

	delete(s.pets, id)
	s.order = slices.DeleteFunc(s.order, func(x string) bool { return x == id })

	return nil
}
