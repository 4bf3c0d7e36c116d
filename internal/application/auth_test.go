package application

import (
	"context"
	"errors"
	"testing"

	"igrejaconnect/internal/domain"
	"igrejaconnect/internal/ports/input"
)

func newAuthFixture() (*AuthService, *fakeProvider, *memUserRepo, *fakePush, *AuthState) {
	provider := newFakeProvider()
	users := newMemUserRepo()
	push := &fakePush{}
	state := NewAuthState()
	svc := NewAuthService(provider, users, push, state)
	return svc, provider, users, push, state
}

func TestRegister_CreatesProfileAndSession(t *testing.T) {
	svc, provider, users, _, state := newAuthFixture()

	user, token, err := svc.Register(context.Background(), input.RegisterInput{
		Email:       "Maria@Exemplo.com",
		Password:    "segredo1",
		DisplayName: "  Maria Silva  ",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("no session token issued")
	}
	if user.Email != "maria@exemplo.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.DisplayName != "Maria Silva" {
		t.Fatalf("display name not trimmed: %q", user.DisplayName)
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("got role %q, want %q", user.Role, domain.RoleMember)
	}
	if users.users[user.ID] == nil {
		t.Fatal("profile not stored")
	}
	if provider.names[user.ID] != "Maria Silva" {
		t.Fatal("display name not synced to provider")
	}
	if state.Current() != user.ID {
		t.Fatal("auth state not set after register")
	}
}

func TestRegister_EmptyDisplayNameRejected(t *testing.T) {
	svc, provider, _, _, _ := newAuthFixture()

	_, _, err := svc.Register(context.Background(), input.RegisterInput{
		Email:       "maria@exemplo.com",
		Password:    "segredo1",
		DisplayName: "   ",
	})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("got %v, want ErrMissingFields", err)
	}
	if len(provider.identities) != 0 {
		t.Fatal("identity created despite invalid input")
	}
}

func TestRegister_DuplicateEmailCreatesNoProfile(t *testing.T) {
	svc, _, users, _, _ := newAuthFixture()

	in := input.RegisterInput{Email: "maria@exemplo.com", Password: "segredo1", DisplayName: "Maria"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	before := len(users.users)

	_, _, err := svc.Register(context.Background(), in)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}
	if len(users.users) != before {
		t.Fatal("duplicate registration created a profile")
	}
}

func TestRegister_PushTokenBestEffort(t *testing.T) {
	svc, _, users, _, _ := newAuthFixture()
	users.pushErr = errors.New("conexão recusada")

	user, _, err := svc.Register(context.Background(), input.RegisterInput{
		Email:       "maria@exemplo.com",
		Password:    "segredo1",
		DisplayName: "Maria",
		PushToken:   "ExponentPushToken[abc]",
	})
	if err != nil {
		t.Fatalf("push failure must not fail registration: %v", err)
	}
	if users.users[user.ID].PushToken != "" {
		t.Fatal("token stored despite failure")
	}
}

func TestLogin_InvalidPushTokenIgnored(t *testing.T) {
	svc, _, users, _, _ := newAuthFixture()

	user, _, err := svc.Register(context.Background(), input.RegisterInput{
		Email:       "maria@exemplo.com",
		Password:    "segredo1",
		DisplayName: "Maria",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "maria@exemplo.com", "segredo1", "invalid"); err != nil {
		t.Fatalf("invalid token must not fail login: %v", err)
	}
	if users.users[user.ID].PushToken != "" {
		t.Fatal("invalid token was stored")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _, state := newAuthFixture()

	_, _, err := svc.Login(context.Background(), "ninguem@exemplo.com", "segredo1", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if state.Current() != "" {
		t.Fatal("failed login set the auth state")
	}
}

func TestLogout_ClearsState(t *testing.T) {
	svc, _, _, _, state := newAuthFixture()

	user, _, err := svc.Register(context.Background(), input.RegisterInput{
		Email:       "maria@exemplo.com",
		Password:    "segredo1",
		DisplayName: "Maria",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if state.Current() != "" || state.Profile() != nil {
		t.Fatal("logout left state behind")
	}
}

func TestRemoteRevocationClearsState(t *testing.T) {
	svc, provider, _, _, state := newAuthFixture()

	user, _, err := svc.Register(context.Background(), input.RegisterInput{
		Email:       "maria@exemplo.com",
		Password:    "segredo1",
		DisplayName: "Maria",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	provider.revoke("alguem-mais")
	if state.Current() != user.ID {
		t.Fatal("revocation for another user cleared the state")
	}

	provider.revoke(user.ID)
	if state.Current() != "" {
		t.Fatal("revocation did not clear the state")
	}
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture()

	if err := svc.ResetPassword(context.Background(), "ninguem@exemplo.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
