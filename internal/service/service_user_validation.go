package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

// UserValidationService runs the declarative field rules on sanitized
// input before handing create and update requests to the inner service.
// Reads pass straight through.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) ListActive(ctx context.Context) ([]models.User, error) {
	return v.inner.ListActive(ctx)
}

func (v *UserValidationService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetByID(ctx, id)
}

func (v *UserValidationService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return v.inner.GetByEmail(ctx, email)
}

func (v *UserValidationService) GetByDepartment(ctx context.Context, department string) ([]models.User, error) {
	return v.inner.GetByDepartment(ctx, department)
}

func (v *UserValidationService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	req = req.Sanitize()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before creating: %w", err)
	}

	return v.inner.Create(ctx, req)
}

func (v *UserValidationService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	if id <= 0 {
		return models.User{}, notFoundByID(id)
	}

	req = req.Sanitize()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, req)
}

func (v *UserValidationService) SoftDelete(ctx context.Context, id int64) (models.User, error) {
	return v.inner.SoftDelete(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
