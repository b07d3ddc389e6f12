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

// Package fake is an in-memory stand-in for the PetFriends REST API. It
// reproduces the status codes and payload shapes the test suites depend on,
// including the service's lack of input validation.
package fake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	authKeyHeader = "auth_key"

	// maxUploadBytes bounds multipart parsing.
	maxUploadBytes = 10 << 20
)

type contextKey int

const userKey contextKey = iota

// Server serves the fake API.
type Server struct {
	store  *Store
	logger zerolog.Logger

	lock sync.RWMutex
	// passwords maps email to password.
	passwords map[string]string
	// keys maps email to its API key and back again.
	keys  map[string]string
	users map[string]string
}

// Option configures a Server.
type Option func(*Server)

// WithAccount registers a user that may authenticate.
func WithAccount(email, password string) Option {
	return func(s *Server) {
		s.AddAccount(email, password)
	}
}

// WithLogger sets the request logger. Logging is disabled by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New returns a server with no accounts unless options add them.
func New(options ...Option) *Server {
	s := &Server{
		store:     NewStore(),
		logger:    zerolog.Nop(),
		passwords: map[string]string{},
		keys:      map[string]string{},
		users:     map[string]string{},
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// AddAccount registers a user. Each account has a single key for the lifetime
// of the server.
func (s *Server) AddAccount(email, password string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.passwords[email] = password

	if _, ok := s.keys[email]; !ok {
		key := newID() + newID()
		s.keys[email] = key
		s.users[key] = email
	}
}

// Store exposes the backing store for seeding and inspection.
func (s *Server) Store() *Store {
	return s.store
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	router.Get("/api/key", s.getAPIKey)

	router.Group(func(r chi.Router) {
		r.Use(s.requireKey)

		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.createPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Put("/api/pets/{petID}", s.updatePet)
		r.Delete("/api/pets/{petID}", s.deletePet)
		r.Delete("/api/pets/", s.deletePet)
		r.Post("/api/pets/set_photo/{petID}", s.setPhoto)
	})

	return router
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("traceparent", r.Header.Get("Traceparent")).
			Msg("request")
	})
}

func (s *Server) requireKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.RLock()
		user, ok := s.users[r.Header.Get(authKeyHeader)]
		s.lock.RUnlock()

		if !ok {
			writeText(w, http.StatusForbidden, "Please provide 'auth_key' Header")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func userFromContext(ctx context.Context) string {
	user, _ := ctx.Value(userKey).(string)

	return user
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

// writeText mimics the HTML error pages the service returns.
func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	_, _ = w.Write([]byte(message))
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPetNotFound):
		writeText(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotOwner):
		writeText(w, http.StatusForbidden, err.Error())
	default:
		writeText(w, http.StatusInternalServerError, err.Error())
	}
}

func formFields(r *http.Request) PetFields {
	return PetFields{
		Name:       r.FormValue("name"),
		AnimalType: r.FormValue("animal_type"),
		Age:        r.FormValue("age"),
	}
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	password := r.Header.Get("password")

	s.lock.RLock()
	expected, ok := s.passwords[email]
	key := s.keys[email]
	s.lock.RUnlock()

	if !ok || expected != password {
		writeText(w, http.StatusForbidden, "This user wasn't found in database")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	var owner string

	switch filter := r.URL.Query().Get("filter"); filter {
	case "":
	case "my_pets":
		owner = userFromContext(r.Context())
	default:
		writeText(w, http.StatusBadRequest, "Filter value is incorrect")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"pets": s.store.List(owner)})
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeText(w, http.StatusBadRequest, "The request must be multipart/form-data")
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}

	pet := s.store.Create(userFromContext(r.Context()), formFields(r), photo)

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) createPetSimple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "Malformed form data")
		return
	}

	pet := s.store.Create(userFromContext(r.Context()), formFields(r), "")

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "Malformed form data")
		return
	}

	pet, err := s.store.Update(userFromContext(r.Context()), chi.URLParam(r, "petID"), formFields(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")
	if petID == "" {
		writeText(w, http.StatusBadRequest, "Pet id is required")
		return
	}

	if err := s.store.Delete(userFromContext(r.Context()), petID); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) setPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeText(w, http.StatusBadRequest, "The request must be multipart/form-data")
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := s.store.SetPhoto(userFromContext(r.Context()), chi.URLParam(r, "petID"), photo)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}
