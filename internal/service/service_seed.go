package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
)

//go:embed seed/demo_users.json
var demoUsersJSON []byte

// DemoUsers returns the embedded demo employees.
func DemoUsers() ([]models.CreateUserRequest, error) {
	var users []models.CreateUserRequest
	if err := json.Unmarshal(demoUsersJSON, &users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeedData, err)
	}
	return users, nil
}

// SeedDemoUsers creates the demo employees through users, so they pass the
// same validation as API input. Records whose email already exists are
// skipped, which makes seeding a persistent store repeatable.
func SeedDemoUsers(ctx context.Context, users UserService) (int, error) {
	log := logger.FromContext(ctx)

	demo, err := DemoUsers()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, req := range demo {
		_, err = users.Create(ctx, req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Debug().Str("func", "SeedDemoUsers").Str("email", req.Email).Msg("demo user already exists")
		default:
			return created, fmt.Errorf("%w: %s: %w", ErrInvalidSeedData, req.Email, err)
		}
	}

	return created, nil
}
