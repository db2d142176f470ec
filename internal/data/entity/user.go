package entity

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// MeUsername is reserved for the current-user route and can never be registered.
const MeUsername = "me"

var roleRank = map[UserRole]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast compares roles on the total order user < moderator < admin.
func (r UserRole) AtLeast(threshold UserRole) bool {
	return roleRank[r] >= roleRank[threshold]
}

type User struct {
	Base
	Username         string   `db:"username"`
	Email            string   `db:"email"`
	Role             UserRole `db:"role"`
	Bio              *string  `db:"bio"`
	FirstName        string   `db:"first_name"`
	LastName         string   `db:"last_name"`
	ConfirmationCode *string  `db:"confirmation_code"`
	IsSuperuser      bool     `db:"is_superuser"`
	IsStaff          bool     `db:"is_staff"`
}

// Normalize enforces the role invariants before every save:
// a superuser is always an admin, and staff access tracks the admin role.
func (u *User) Normalize() {
	if u.IsSuperuser {
		u.Role = RoleAdmin
	}
	u.IsStaff = u.Role == RoleAdmin
}
