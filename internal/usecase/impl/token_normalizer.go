package impl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

var identityValidator = validator.New(validator.WithRequiredStructEnabled())

// NormalizeTokens extracts the canonical token pair from a login response.
// The "tokens" shape wins when it is complete; otherwise the "session" shape is
// read, preferring camelCase over snake_case field by field.
func NormalizeTokens(resp *service.LoginResponse) (entity.TokenPair, error) {
	if resp == nil {
		return entity.TokenPair{}, domainerrors.ErrInvalidLoginResponse.WithDetails("empty response")
	}

	if t := resp.Tokens; t != nil && t.AccessToken != "" && t.RefreshToken != "" {
		return entity.TokenPair{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}, nil
	}

	var pair entity.TokenPair
	if s := resp.Session; s != nil {
		pair.AccessToken = firstNonEmpty(s.AccessToken, s.AccessTokenSnake)
		pair.RefreshToken = firstNonEmpty(s.RefreshToken, s.RefreshTokenSnake)
	}

	if !pair.IsComplete() {
		return entity.TokenPair{}, domainerrors.ErrInvalidLoginResponse.WithDetails("access or refresh token missing")
	}

	return pair, nil
}

// NormalizeIdentity converts the loosely typed user record of a login response
// into an Identity. Unknown roles are sanitized to RoleUnknown and non-boolean
// flags are treated as absent.
func NormalizeIdentity(raw map[string]any) (*entity.Identity, error) {
	if len(raw) == 0 {
		return nil, domainerrors.ErrInvalidLoginResponse.WithDetails("user missing")
	}

	identity := &entity.Identity{
		ID:              firstNonEmpty(stringField(raw, "id"), stringField(raw, "_id")),
		Type:            entity.ParseRole(stringField(raw, "type")),
		AccountType:     entity.ParseRole(stringField(raw, "accountType")),
		Email:           stringField(raw, "email"),
		FirstName:       stringField(raw, "firstName"),
		LastName:        stringField(raw, "lastName"),
		IsPhoneVerified: boolField(raw, "isPhoneVerified"),
		IsHasIdentity:   boolField(raw, "isHasIdentity"),
	}

	if err := identityValidator.Struct(identity); err != nil {
		return nil, domainerrors.ErrInvalidLoginResponse.WithDetails(err.Error())
	}

	return identity, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int, int64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

func boolField(raw map[string]any, key string) *bool {
	v, ok := raw[key].(bool)
	if !ok {
		return nil
	}

	return &v
}
