package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

// MinTokenLength is the shortest token accepted by [AuthService.ParseToken].
const MinTokenLength = 10

// tokenSeparator delimits the prefix and identity segments of a token.
const tokenSeparator = "_"

// rolesByPrefix maps recognized token prefixes to the role they grant.
var rolesByPrefix = map[string]models.Role{
	"admin":    models.RoleAdmin,
	"user":     models.RoleUser,
	"readonly": models.RoleReadOnly,
}

// authService checks the shape of prefix tokens: "<prefix>_<identity>[_...]".
type authService struct {
	logger *logger.Logger
}

func NewAuthService(logger *logger.Logger) AuthService {
	return &authService{
		logger: logger,
	}
}

// ParseToken validates the token shape and derives the caller identity.
//
// A token is accepted when:
//   - it is at least MinTokenLength characters long;
//   - it starts with a recognized prefix followed by '_';
//   - its second '_'-delimited segment, the identity, is not empty.
//
// Any violation yields ErrInvalidToken wrapped with the reason.
func (a *authService) ParseToken(ctx context.Context, token string) (models.Principal, error) {
	if len(token) < MinTokenLength {
		return models.Principal{}, fmt.Errorf("%w: shorter than %d characters", ErrInvalidToken, MinTokenLength)
	}

	segments := strings.Split(token, tokenSeparator)
	if len(segments) < 2 {
		return models.Principal{}, fmt.Errorf("%w: expected <prefix>_<identity>", ErrInvalidToken)
	}

	role, ok := rolesByPrefix[segments[0]]
	if !ok {
		return models.Principal{}, fmt.Errorf("%w: unrecognized prefix", ErrInvalidToken)
	}

	if segments[1] == "" {
		return models.Principal{}, fmt.Errorf("%w: empty identity", ErrInvalidToken)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*authService.ParseToken").
		Str("subject", segments[1]).
		Str("role", string(role)).
		Msg("token accepted")

	return models.Principal{Subject: segments[1], Role: role}, nil
}
