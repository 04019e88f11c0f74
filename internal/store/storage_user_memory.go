// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

// memoryUserStorage keeps records in insertion order in a slice.
// Records are never removed; soft delete only flips Active.
//
// mu guards users and nextID and is held for the whole of every method,
// never across calls.
type memoryUserStorage struct {
	mu     sync.Mutex
	users  []models.User
	nextID int64

	// emailUniqueIncludingDeleted makes inactive records block their email too.
	emailUniqueIncludingDeleted bool

	logger *logger.Logger
}

// NewMemoryUserStorage returns an empty in-memory [UserStorage].
func NewMemoryUserStorage(emailUniqueIncludingDeleted bool, logger *logger.Logger) UserStorage {
	logger.Debug().Msg("creating in-memory user storage")
	return &memoryUserStorage{
		users:                       make([]models.User, 0),
		nextID:                      1,
		emailUniqueIncludingDeleted: emailUniqueIncludingDeleted,
		logger:                      logger,
	}
}

func (s *memoryUserStorage) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(func(u models.User) bool { return true }), nil
}

func (s *memoryUserStorage) GetByID(ctx context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfActive(id)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}
	return s.users[i], nil
}

func (s *memoryUserStorage) GetByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Active && strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (s *memoryUserStorage) ListByDepartment(ctx context.Context, department string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter(func(u models.User) bool { return strings.EqualFold(u.Department, department) }), nil
}

func (s *memoryUserStorage) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Email, 0) {
		log.Debug().Str("func", "*memoryUserStorage.Create").Str("email", user.Email).Msg("email is already taken")
		return models.User{}, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, user.Email)
	}

	user.ID = s.nextID
	user.Active = true
	user.UpdatedAt = nil
	s.nextID++
	s.users = append(s.users, user)

	return user, nil
}

func (s *memoryUserStorage) Update(ctx context.Context, id int64, patch models.UserPatch, now time.Time) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfActive(id)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	if patch.Email != nil && !strings.EqualFold(*patch.Email, s.users[i].Email) && s.emailTaken(*patch.Email, id) {
		return models.User{}, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, *patch.Email)
	}

	u := s.users[i]
	patch.Apply(&u)
	u.UpdatedAt = &now
	s.users[i] = u

	return u, nil
}

func (s *memoryUserStorage) SoftDelete(ctx context.Context, id int64, now time.Time) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfActive(id)
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	u := s.users[i]
	u.Active = false
	u.UpdatedAt = &now
	s.users[i] = u

	return u, nil
}

func (s *memoryUserStorage) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, u := range s.users {
		if u.Active {
			n++
		}
	}
	return n, nil
}

func (s *memoryUserStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// filter returns copies of the active records matching keep. Callers must hold mu.
func (s *memoryUserStorage) filter(keep func(models.User) bool) []models.User {
	out := make([]models.User, 0)
	for _, u := range s.users {
		if u.Active && keep(u) {
			out = append(out, u)
		}
	}
	return out
}

// indexOfActive returns the slice index of the active record id, or -1.
// Callers must hold mu.
func (s *memoryUserStorage) indexOfActive(id int64) int {
	for i, u := range s.users {
		if u.ID == id && u.Active {
			return i
		}
	}
	return -1
}

// emailTaken reports whether a record other than exceptID holds email.
// Callers must hold mu.
func (s *memoryUserStorage) emailTaken(email string, exceptID int64) bool {
	for _, u := range s.users {
		if u.ID == exceptID {
			continue
		}
		if !u.Active && !s.emailUniqueIncludingDeleted {
			continue
		}
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
