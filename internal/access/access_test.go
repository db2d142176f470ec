package access

import (
	"net/http"
	"testing"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func authPrincipal(role entity.UserRole) Principal {
	return Principal{
		ID:            uuid.New(),
		Username:      "someone",
		Role:          role,
		Authenticated: true,
	}
}

func TestCanAdminister(t *testing.T) {
	cases := []struct {
		name   string
		p      Principal
		method string
		want   bool
	}{
		{"anonymous read", Anonymous(), http.MethodGet, true},
		{"anonymous head", Anonymous(), http.MethodHead, true},
		{"anonymous options", Anonymous(), http.MethodOptions, true},
		{"anonymous write", Anonymous(), http.MethodPost, false},
		{"user write", authPrincipal(entity.RoleUser), http.MethodPost, false},
		{"moderator write", authPrincipal(entity.RoleModerator), http.MethodDelete, false},
		{"admin write", authPrincipal(entity.RoleAdmin), http.MethodPost, true},
		{"admin delete", authPrincipal(entity.RoleAdmin), http.MethodDelete, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CanAdminister(tc.p, tc.method))
		})
	}
}

func TestCanContribute(t *testing.T) {
	require.True(t, CanContribute(Anonymous(), http.MethodGet))
	require.False(t, CanContribute(Anonymous(), http.MethodPost))
	require.True(t, CanContribute(authPrincipal(entity.RoleUser), http.MethodPost))
	require.True(t, CanContribute(authPrincipal(entity.RoleModerator), http.MethodPatch))
}

func TestCanActOn(t *testing.T) {
	owner := authPrincipal(entity.RoleUser)
	other := authPrincipal(entity.RoleUser)
	mod := authPrincipal(entity.RoleModerator)
	admin := authPrincipal(entity.RoleAdmin)

	// Reads are open to everyone, including anonymous.
	require.True(t, CanActOn(Anonymous(), http.MethodGet, owner.ID))

	// Writes: owner yes, unrelated user no.
	require.True(t, CanActOn(owner, http.MethodPatch, owner.ID))
	require.True(t, CanActOn(owner, http.MethodDelete, owner.ID))
	require.False(t, CanActOn(other, http.MethodPatch, owner.ID))
	require.False(t, CanActOn(other, http.MethodDelete, owner.ID))
	require.False(t, CanActOn(Anonymous(), http.MethodPatch, owner.ID))

	// Moderators and admins may act on anyone's resource.
	require.True(t, CanActOn(mod, http.MethodPatch, owner.ID))
	require.True(t, CanActOn(mod, http.MethodDelete, owner.ID))
	require.True(t, CanActOn(admin, http.MethodDelete, owner.ID))
}

func TestIsStaff(t *testing.T) {
	require.False(t, Anonymous().IsStaff())
	require.False(t, authPrincipal(entity.RoleUser).IsStaff())
	require.True(t, authPrincipal(entity.RoleModerator).IsStaff())
	require.True(t, authPrincipal(entity.RoleAdmin).IsStaff())

	// An unauthenticated principal carrying a role is still not staff.
	stale := Principal{Role: entity.RoleAdmin}
	require.False(t, stale.IsStaff())
}
