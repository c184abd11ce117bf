package identity

import (
	"errors"
	"fmt"
)

var ErrUnauthorized = errors.New("unauthorized")

// AccountID is an opaque caller identity (32-char lowercase hex), already
// authenticated upstream. The core only ever compares these for equality.
type AccountID string

// Role names the capacity a caller is acting in. It only affects error
// messages; authorization itself is a plain identity match.
type Role string

const (
	RoleEmployer Role = "employer"
	RoleEmployee Role = "employee"
	RoleBorrower Role = "borrower"
	RoleAdmin    Role = "admin"
)

// RequireRole checks that caller is exactly the identity expected to hold the
// given role. No cryptography here; the signature layer vouches for caller.
func RequireRole(caller, expected AccountID, role Role) error {
	if caller == "" || caller != expected {
		return fmt.Errorf("%w: caller is not the %s", ErrUnauthorized, role)
	}
	return nil
}
