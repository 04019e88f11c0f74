package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

const (
	msgInvalidHireDate = "Hire date must be a valid date in YYYY-MM-DD format"
	msgFutureHireDate  = "Hire date cannot be in the future"
)

// userService applies the business rules on top of a [store.UserStorage]:
// sanitization, not-found mapping and the hire date check. Email
// uniqueness is enforced by the storage, atomically with the write.
type userService struct {
	userStorage store.UserStorage

	// now is the clock used for timestamps and the hire date rule.
	now func() time.Time

	logger *logger.Logger
}

func NewUserService(userStorage store.UserStorage, logger *logger.Logger) UserService {
	return NewUserServiceWithClock(userStorage, time.Now, logger)
}

func NewUserServiceWithClock(userStorage store.UserStorage, now func() time.Time, logger *logger.Logger) UserService {
	return &userService{
		userStorage: userStorage,
		now:         now,
		logger:      logger,
	}
}

func (s *userService) ListActive(ctx context.Context) ([]models.User, error) {
	return s.userStorage.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, notFoundByID(id)
	}

	user, err := s.userStorage.GetByID(ctx, id)
	return user, mapNotFound(err, notFoundByID(id))
}

func (s *userService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return models.User{}, fmt.Errorf("%w: blank email", ErrUserNotFound)
	}

	user, err := s.userStorage.GetByEmail(ctx, email)
	return user, mapNotFound(err, fmt.Errorf("%w: email %s", ErrUserNotFound, email))
}

func (s *userService) GetByDepartment(ctx context.Context, department string) ([]models.User, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return []models.User{}, nil
	}

	return s.userStorage.ListByDepartment(ctx, department)
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := req.Sanitize().ToUser()
	if err != nil {
		return models.User{}, &validators.ValidationError{Messages: []string{msgInvalidHireDate}}
	}
	if err = s.checkHireDate(user.HireDate); err != nil {
		return models.User{}, err
	}

	user.CreatedAt = s.now().UTC()
	created, err := s.userStorage.Create(ctx, user)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userService.Create").Msg("user was not created")
		return models.User{}, err
	}

	log.Info().Str("func", "*userService.Create").Int64("id", created.ID).Msg("user created")
	return created, nil
}

func (s *userService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.User{}, notFoundByID(id)
	}

	patch, err := req.Sanitize().ToPatch()
	if err != nil {
		return models.User{}, &validators.ValidationError{Messages: []string{msgInvalidHireDate}}
	}
	if patch.HireDate != nil {
		if err = s.checkHireDate(*patch.HireDate); err != nil {
			return models.User{}, err
		}
	}

	updated, err := s.userStorage.Update(ctx, id, patch, s.now().UTC())
	if err != nil {
		return models.User{}, mapNotFound(err, notFoundByID(id))
	}

	log.Info().Str("func", "*userService.Update").Int64("id", id).Msg("user updated")
	return updated, nil
}

func (s *userService) SoftDelete(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.User{}, notFoundByID(id)
	}

	deleted, err := s.userStorage.SoftDelete(ctx, id, s.now().UTC())
	if err != nil {
		return models.User{}, mapNotFound(err, notFoundByID(id))
	}

	log.Info().Str("func", "*userService.SoftDelete").Int64("id", id).Msg("user deactivated")
	return deleted, nil
}

// checkHireDate rejects dates after today. Only the date part of the clock
// is used.
func (s *userService) checkHireDate(d models.Date) error {
	if d.After(models.NewDate(s.now())) {
		return &validators.ValidationError{Messages: []string{msgFutureHireDate}}
	}
	return nil
}

func notFoundByID(id int64) error {
	return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
}

// mapNotFound replaces store.ErrNoUserWasFound with notFound and passes
// every other error through.
func mapNotFound(err, notFound error) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return notFound
	}
	return err
}
