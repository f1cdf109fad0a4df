package usecase

import (
	"context"
	"crypto/subtle"
)

// AdminGate authenticates requests to the admin surface
type AdminGate interface {
	Verify(ctx context.Context, username, password string) bool
}

// StaticCredentials is an AdminGate backed by a single configured
// credential pair. Comparison is constant time so response timing does
// not leak how much of a guess matched.
type StaticCredentials struct {
	username string
	password string
}

var _ AdminGate = &StaticCredentials{}

func NewStaticCredentials(username, password string) *StaticCredentials {
	return &StaticCredentials{username: username, password: password}
}

func (c *StaticCredentials) Verify(ctx context.Context, username, password string) bool {
	if c.username == "" || c.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	return userOK && passOK
}

// VerifyAdmin checks an admin credential pair against the configured
// gate. There is no session: every admin request re-authenticates.
func (uc *UseCases) VerifyAdmin(ctx context.Context, username, password string) error {
	if uc.adminGate == nil || !uc.adminGate.Verify(ctx, username, password) {
		return ErrUnauthorized
	}
	return nil
}
