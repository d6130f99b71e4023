package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{in: "ADMIN", want: RoleAdmin},
		{in: "sous_admin", want: RoleSousAdmin},
		{in: " Professional ", want: RoleProfessional},
		{in: "CLIENT", want: RoleClient},
		{in: "RESELLER", want: RoleReseller},
		{in: "SUPERUSER", want: RoleUnknown},
		{in: "", want: RoleUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.in), tt.in)
	}
}

func TestHasAdminPrivileges(t *testing.T) {
	assert.True(t, HasAdminPrivileges(RoleAdmin))
	assert.True(t, HasAdminPrivileges(RoleSousAdmin))
	assert.False(t, HasAdminPrivileges(RoleReseller))
	assert.False(t, HasAdminPrivileges(RoleProfessional))
	assert.False(t, HasAdminPrivileges(RoleUnknown))
	assert.False(t, HasAdminPrivileges(Role("admin")), "roles are matched exactly")
}

func TestHasMinimumRole(t *testing.T) {
	tests := []struct {
		name     string
		user     Role
		required Role
		want     bool
	}{
		{name: "equal", user: RoleReseller, required: RoleReseller, want: true},
		{name: "higher", user: RoleAdmin, required: RoleProfessional, want: true},
		{name: "lower", user: RoleClient, required: RoleProfessional, want: false},
		{name: "sous admin below admin", user: RoleSousAdmin, required: RoleAdmin, want: false},
		{name: "unknown user", user: RoleUnknown, required: RoleClient, want: false},
		{name: "unknown requirement", user: RoleAdmin, required: Role("ROOT"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMinimumRole(tt.user, tt.required))
		})
	}
}

func TestRole_Rank(t *testing.T) {
	assert.Equal(t, 0, RoleUnknown.Rank())
	assert.Equal(t, 1, RoleClient.Rank())
	assert.Equal(t, 5, RoleAdmin.Rank())
	assert.Less(t, RoleSousAdmin.Rank(), RoleAdmin.Rank())
}

func TestRole_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{name: "canonical", in: `"ADMIN"`, want: RoleAdmin},
		{name: "lowercase", in: `"professional"`, want: RoleProfessional},
		{name: "padded", in: `" sous_admin "`, want: RoleSousAdmin},
		{name: "unknown", in: `"superuser"`, want: RoleUnknown},
		{name: "null", in: `null`, want: RoleUnknown},
		{name: "number", in: `5`, want: RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var identity Identity
			require.NoError(t, json.Unmarshal([]byte(`{"id":"u1","type":`+tt.in+`,"accountType":`+tt.in+`}`), &identity))
			assert.Equal(t, tt.want, identity.Type)
			assert.Equal(t, tt.want, identity.AccountType)
		})
	}
}
