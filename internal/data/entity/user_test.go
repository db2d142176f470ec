package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRoleOrder(t *testing.T) {
	require.True(t, RoleAdmin.AtLeast(RoleModerator))
	require.True(t, RoleAdmin.AtLeast(RoleUser))
	require.True(t, RoleModerator.AtLeast(RoleUser))
	require.True(t, RoleUser.AtLeast(RoleUser))

	require.False(t, RoleUser.AtLeast(RoleModerator))
	require.False(t, RoleModerator.AtLeast(RoleAdmin))

	// An unknown role ranks below everything.
	require.False(t, UserRole("superhero").AtLeast(RoleUser))
}

func TestUserRoleValid(t *testing.T) {
	for _, r := range []UserRole{RoleUser, RoleModerator, RoleAdmin} {
		require.True(t, r.Valid())
	}
	require.False(t, UserRole("").Valid())
	require.False(t, UserRole("root").Valid())
}

func TestUserNormalize(t *testing.T) {
	u := &User{Role: RoleUser, IsSuperuser: true}
	u.Normalize()
	require.Equal(t, RoleAdmin, u.Role)
	require.True(t, u.IsStaff)

	u = &User{Role: RoleModerator}
	u.Normalize()
	require.Equal(t, RoleModerator, u.Role)
	require.False(t, u.IsStaff)

	u = &User{Role: RoleAdmin}
	u.Normalize()
	require.True(t, u.IsStaff)

	// Demoting an admin clears the staff flag.
	u.Role = RoleUser
	u.Normalize()
	require.False(t, u.IsStaff)
}
