// Package session holds the authenticated principal of the interactive console.
package session

import (
	"context"
	"strings"

	"hotel/shared/constant"
	"hotel/shared/failure"
)

type contextKey struct{}

var ErrNotAuthenticated = failure.Unauthorized("please log in first")

type Principal struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func NewPrincipal(userID int64, name, role string) Principal {
	return Principal{
		UserID: userID,
		Name:   strings.TrimSpace(name),
		Role:   strings.ToLower(strings.TrimSpace(role)),
	}
}

// HasElevatedRights is true for managers and admins.
func (p Principal) HasElevatedRights() bool {
	return p.Role == constant.RoleManager || p.Role == constant.RoleAdmin
}

func (p Principal) IsAdmin() bool {
	return p.Role == constant.RoleAdmin
}

// Session is the Unauthenticated -> Authenticated -> Unauthenticated state of one console run.
type Session struct {
	principal *Principal
}

func New() *Session {
	return &Session{}
}

func (s *Session) Login(principal Principal) {
	s.principal = &principal
}

func (s *Session) Logout() {
	s.principal = nil
}

func (s *Session) Authenticated() bool {
	return s.principal != nil
}

func (s *Session) Principal() (Principal, bool) {
	if s.principal == nil {
		return Principal{}, false
	}

	return *s.principal, true
}

// Context returns ctx carrying the current principal, or ctx unchanged when logged out.
func (s *Session) Context(ctx context.Context) context.Context {
	if s.principal == nil {
		return ctx
	}

	return NewContext(ctx, *s.principal)
}

func NewContext(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, principal)
}

func FromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(contextKey{}).(Principal)

	return principal, ok
}

// Require returns the principal of ctx or ErrNotAuthenticated.
func Require(ctx context.Context) (Principal, error) {
	principal, ok := FromContext(ctx)
	if !ok {
		return Principal{}, ErrNotAuthenticated
	}

	return principal, nil
}

// RequireElevated returns the principal of ctx when it is a manager or an admin.
func RequireElevated(ctx context.Context) (Principal, error) {
	principal, err := Require(ctx)
	if err != nil {
		return Principal{}, err
	}

	if !principal.HasElevatedRights() {
		return Principal{}, failure.ForbiddenError
	}

	return principal, nil
}
