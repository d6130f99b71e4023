package impl

import (
	"testing"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTokens(t *testing.T) {
	tests := []struct {
		name    string
		resp    *service.LoginResponse
		want    entity.TokenPair
		wantErr bool
	}{
		{
			name: "tokens shape",
			resp: &service.LoginResponse{
				Tokens:  &service.LoginTokens{AccessToken: "a1", RefreshToken: "r1"},
				Session: &service.LoginSession{AccessToken: "a2", RefreshToken: "r2"},
			},
			want: entity.TokenPair{AccessToken: "a1", RefreshToken: "r1"},
		},
		{
			name: "incomplete tokens fall back to session",
			resp: &service.LoginResponse{
				Tokens:  &service.LoginTokens{AccessToken: "a1"},
				Session: &service.LoginSession{AccessToken: "a2", RefreshToken: "r2"},
			},
			want: entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"},
		},
		{
			name: "camelCase beats snake_case",
			resp: &service.LoginResponse{
				Session: &service.LoginSession{
					AccessToken:       "camel",
					AccessTokenSnake:  "snake",
					RefreshTokenSnake: "snake-refresh",
				},
			},
			want: entity.TokenPair{AccessToken: "camel", RefreshToken: "snake-refresh"},
		},
		{
			name:    "missing refresh token",
			resp:    &service.LoginResponse{Session: &service.LoginSession{AccessToken: "a"}},
			wantErr: true,
		},
		{name: "no token shape", resp: &service.LoginResponse{}, wantErr: true},
		{name: "nil response", resp: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTokens(tt.resp)
			if tt.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrInvalidLoginResponse)
				assert.Equal(t, entity.TokenPair{}, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIdentity(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		identity, err := NormalizeIdentity(map[string]any{
			"_id":             "64f0c0ffee",
			"type":            "professional",
			"accountType":     "SOUS_ADMIN",
			"email":           "seller@example.com",
			"firstName":       "Amel",
			"lastName":        "Haddad",
			"isPhoneVerified": true,
			"isHasIdentity":   false,
		})
		require.NoError(t, err)

		assert.Equal(t, "64f0c0ffee", identity.ID)
		assert.Equal(t, entity.RoleProfessional, identity.Type)
		assert.Equal(t, entity.RoleSousAdmin, identity.AccountType)
		assert.Equal(t, "seller@example.com", identity.Email)
		require.NotNil(t, identity.IsPhoneVerified)
		assert.True(t, *identity.IsPhoneVerified)
		require.NotNil(t, identity.IsHasIdentity)
		assert.False(t, *identity.IsHasIdentity)
	})

	t.Run("id preferred over _id", func(t *testing.T) {
		identity, err := NormalizeIdentity(map[string]any{"id": "a", "_id": "b", "type": "CLIENT"})
		require.NoError(t, err)
		assert.Equal(t, "a", identity.ID)
	})

	t.Run("numeric id", func(t *testing.T) {
		identity, err := NormalizeIdentity(map[string]any{"id": float64(42), "type": "CLIENT"})
		require.NoError(t, err)
		assert.Equal(t, "42", identity.ID)
	})

	t.Run("unknown role and loose flags are sanitized", func(t *testing.T) {
		identity, err := NormalizeIdentity(map[string]any{
			"id":              "u1",
			"type":            "WIZARD",
			"isPhoneVerified": "false",
			"isHasIdentity":   1,
		})
		require.NoError(t, err)

		assert.Equal(t, entity.RoleUnknown, identity.Type)
		assert.Nil(t, identity.IsPhoneVerified)
		assert.Nil(t, identity.IsHasIdentity)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NormalizeIdentity(map[string]any{"type": "ADMIN"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidLoginResponse)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := NormalizeIdentity(nil)
		require.ErrorIs(t, err, domainerrors.ErrInvalidLoginResponse)
	})
}
