package identity

import (
	"errors"
	"strings"
	"testing"
)

func TestRequireRole_Match(t *testing.T) {
	a := AccountID(strings.Repeat("a", 32))
	if err := RequireRole(a, a, RoleEmployee); err != nil {
		t.Fatalf("RequireRole err: %v", err)
	}
}

func TestRequireRole_Mismatch(t *testing.T) {
	a := AccountID(strings.Repeat("a", 32))
	b := AccountID(strings.Repeat("b", 32))
	err := RequireRole(a, b, RoleEmployer)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if !strings.Contains(err.Error(), "employer") {
		t.Fatalf("error %q does not name the role", err.Error())
	}
}

func TestRequireRole_EmptyCaller(t *testing.T) {
	b := AccountID(strings.Repeat("b", 32))
	if err := RequireRole("", b, RoleAdmin); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	// empty expected never matches either
	if err := RequireRole("", "", RoleAdmin); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("empty caller must not authorize, got %v", err)
	}
}
