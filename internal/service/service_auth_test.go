package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(logger.Nop())
	ctx := context.Background()

	tests := []struct {
		name        string
		token       string
		wantRole    models.Role
		wantSubject string
		wantErr     bool
	}{
		{name: "admin", token: "admin_alice123", wantRole: models.RoleAdmin, wantSubject: "alice123"},
		{name: "user", token: "user_bob_2025", wantRole: models.RoleUser, wantSubject: "bob"},
		{name: "readonly", token: "readonly_carol", wantRole: models.RoleReadOnly, wantSubject: "carol"},
		{name: "empty", token: "", wantErr: true},
		{name: "too short", token: "admin_bob", wantErr: true},
		{name: "unknown prefix", token: "guest_alice123", wantErr: true},
		{name: "prefix case matters", token: "ADMIN_alice123", wantErr: true},
		{name: "no separator", token: "adminalice123", wantErr: true},
		{name: "empty identity", token: "admin__padding", wantErr: true},
		{name: "only separators", token: "admin_____", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.ParseToken(ctx, tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, p.Role)
			assert.Equal(t, tt.wantSubject, p.Subject)
		})
	}
}
