// Package access holds the pure authorization predicates. They take the
// principal and the target and return a decision; nothing here touches the
// network or the database, so every rule is testable in isolation.
package access

import (
	"net/http"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"

	"github.com/google/uuid"
)

// Principal is the actor behind a request. The zero value is the anonymous
// principal: unauthenticated, no role.
type Principal struct {
	ID            uuid.UUID
	Username      string
	Role          entity.UserRole
	Authenticated bool
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{}
}

// IsStaff reports whether the principal outranks plain ownership.
func (p Principal) IsStaff() bool {
	return p.Authenticated && p.Role.AtLeast(entity.RoleModerator)
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// CanAdminister is the request-level rule for the category/genre/title family:
// reads are open to everyone, writes require an authenticated admin.
func CanAdminister(p Principal, method string) bool {
	if safeMethod(method) {
		return true
	}
	return p.Authenticated && p.Role == entity.RoleAdmin
}

// CanContribute is the request-level rule for reviews and comments: reads are
// open, writes require any authenticated principal.
func CanContribute(p Principal, method string) bool {
	if safeMethod(method) {
		return true
	}
	return p.Authenticated
}

// CanActOn is the object-level rule for resources that carry an author:
// reads are open, writes require the author themselves or a moderator/admin.
func CanActOn(p Principal, method string, authorID uuid.UUID) bool {
	if safeMethod(method) {
		return true
	}
	if !p.Authenticated {
		return false
	}
	return p.ID == authorID || p.Role.AtLeast(entity.RoleModerator)
}
