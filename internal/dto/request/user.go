package request

// UpdateProfileRequest is the self-service PATCH body. A role value is
// accepted here but never applied: the service keeps the caller's current
// role regardless of what was submitted.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

// CreateUserRequest is the admin-only user management create body.
type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,max=150,identifier"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Role      string  `json:"role" validate:"omitempty,oneof=user moderator admin"`
	FirstName string  `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  string  `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// UpdateUserRequest is the admin-only PATCH body; unlike the self-service
// path it may change the role.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}
