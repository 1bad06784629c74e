package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidToken reports a token that is malformed, forged or expired.
	ErrInvalidToken = errors.New("invalid auth token")
	// ErrDisabled is returned by logins when no credentials are configured.
	ErrDisabled = errors.New("admin login is disabled")
)

// Strategy issues and verifies bearer tokens for a subject.
type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL    time.Duration
	Issuer string
}
