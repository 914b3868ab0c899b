package identity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/quotienthq/quotient/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.Users())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, "ada", "hunter2", "ada@example.com")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero user id")
	}

	got, err := svc.Login(ctx, "ada", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got != id {
		t.Errorf("login id = %d, want %d", got, id)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ada", "hunter2", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(ctx, "ada", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ada", "hunter2", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, "ada", "other", "")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterTrimsAndValidates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "   ", "pw", ""); err == nil {
		t.Error("expected error for blank username")
	}
	if _, err := svc.Register(ctx, "ada", "", ""); err == nil {
		t.Error("expected error for empty password")
	}

	id, err := svc.Register(ctx, "  grace  ", "pw", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := svc.Login(ctx, "grace", "pw")
	if err != nil {
		t.Fatalf("login with trimmed name: %v", err)
	}
	if got != id {
		t.Errorf("login id = %d, want %d", got, id)
	}
}

func TestPasswordStoredHashed(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	svc := NewService(s.Users())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ada", "hunter2", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := s.Users().ByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if u.Password == "hunter2" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(u.Password, "$2") {
		t.Errorf("stored password %q does not look like a bcrypt hash", u.Password)
	}
}
