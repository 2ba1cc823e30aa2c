package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Role is the marketplace side an account acts on.
type Role string

const (
	RoleVendor   Role = "vendor"
	RoleSupplier Role = "supplier"
)

// ParseRole validates s as a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleVendor, RoleSupplier:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Identity is the authenticated caller: a stable account id and its role.
type Identity struct {
	AccountID uuid.UUID
	Role      Role
}

// IsVendor reports whether the caller buys supplies.
func (i Identity) IsVendor() bool { return i.Role == RoleVendor }

// IsSupplier reports whether the caller sells products.
func (i Identity) IsSupplier() bool { return i.Role == RoleSupplier }

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const identityKey contextKey = "identity"

// ErrIdentityNotFound is returned when no Identity exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrIdentityNotFound = errors.New("identity not found in context")

// ErrForbiddenRole is returned when the caller's role may not perform an action.
var ErrForbiddenRole = errors.New("role not allowed")

// IdentityFromCtx extracts the authenticated caller from the request context.
// Returns ErrIdentityNotFound for unauthenticated requests or a nil account id.
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.AccountID == uuid.Nil {
		return Identity{}, ErrIdentityNotFound
	}
	return id, nil
}

// AccountIDFromCtx is IdentityFromCtx without the role.
func AccountIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, err := IdentityFromCtx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return id.AccountID, nil
}

// WithIdentity returns a new context with the given Identity attached.
// Used by authentication middleware after validating the session or token.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
