package auth

import (
	"context"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleMember = "MEMBER"
	RoleAdmin  = "ADMIN"

	XUserIDHeader   = "X-User-Id"
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

// Principal is the authenticated identity making a request.
// It is always passed explicitly, never read from globals.
type Principal struct {
	ID   string
	Name string
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Authorize reports whether the principal may act on a resource
// owned by ownerID: the owner or an admin.
func Authorize(p Principal, ownerID string) bool {
	return p.IsAdmin() || (ownerID != "" && p.ID == ownerID)
}

type Profile struct {
	UserID string `json:"sub"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profile Profile `json:"profile"`
}

type contextKey int

const principalKey contextKey = iota + 1

func SetAuthContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func FromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.ID == "" {
		return Principal{}, errors.New("no principal in context")
	}
	return p, nil
}
