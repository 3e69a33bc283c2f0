package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"fuelgo/internal/auth-service/core/domain/dto"
	"fuelgo/internal/auth-service/core/domain/models"
	"fuelgo/internal/config"
	"fuelgo/internal/mylogger"
)

// Mock IUserRepo
type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by user id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]models.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return "", ErrEmailRegistered
		}
	}

	m.seq++
	user.UserID = fmt.Sprintf("user-%d", m.seq)
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return user.UserID, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUnknownEmail
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *mockUserRepo) {
	t.Helper()

	log, err := mylogger.New(mylogger.LevelError)
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}

	cfg := &config.Config{App: &config.Appconfig{JwtSecret: "test-secret"}}
	repo := newMockUserRepo()
	return NewAuthService(cfg, repo, log), repo
}

func registration() dto.UserRegistrationRequest {
	return dto.UserRegistrationRequest{
		Name:     "Jane Wanjiku",
		Email:    "jane@fuelgo.test",
		Password: "secret123",
		Phone:    "+254700000000",
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService(t)

	res, err := svc.Register(context.Background(), registration())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Token == "" {
		t.Error("expected a signed token")
	}
	if res.User.ID == "" {
		t.Error("expected a user id")
	}
	if res.User.Email != "jane@fuelgo.test" {
		t.Errorf("email = %q, want jane@fuelgo.test", res.User.Email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	ctx := context.Background()
	if _, err := svc.Register(ctx, registration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.Register(ctx, registration())
	if !errors.Is(err, ErrEmailRegistered) {
		t.Errorf("expected ErrEmailRegistered, got: %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	cases := []struct {
		name string
		req  dto.UserRegistrationRequest
	}{
		{"empty name", dto.UserRegistrationRequest{Email: "jane@fuelgo.test", Password: "secret123"}},
		{"short password", dto.UserRegistrationRequest{Name: "Jane", Email: "jane@fuelgo.test", Password: "abc"}},
		{"email without @", dto.UserRegistrationRequest{Name: "Jane", Email: "jane.fuelgo.test", Password: "secret123"}},
		{"email with two @", dto.UserRegistrationRequest{Name: "Jane", Email: "jane@@fuelgo.test", Password: "secret123"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), c.req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	ctx := context.Background()
	reg, err := svc.Register(ctx, registration())
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.Login(ctx, dto.UserAuthRequest{
		Email:    "jane@fuelgo.test",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Token == "" {
		t.Error("expected a signed token")
	}
	if res.User.ID != reg.User.ID {
		t.Errorf("user id = %q, want %q", res.User.ID, reg.User.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	ctx := context.Background()
	if _, err := svc.Register(ctx, registration()); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Login(ctx, dto.UserAuthRequest{
		Email:    "jane@fuelgo.test",
		Password: "not-the-password",
	})
	if !errors.Is(err, ErrPasswordUnknown) {
		t.Errorf("expected ErrPasswordUnknown, got: %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.UserAuthRequest{
		Email:    "nobody@fuelgo.test",
		Password: "secret123",
	})
	if !errors.Is(err, ErrUnknownEmail) {
		t.Errorf("expected ErrUnknownEmail, got: %v", err)
	}
}

func TestProfile(t *testing.T) {
	svc, _ := newTestAuthService(t)

	ctx := context.Background()
	reg, err := svc.Register(ctx, registration())
	if err != nil {
		t.Fatal(err)
	}

	profile, err := svc.Profile(ctx, reg.User.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Email != "jane@fuelgo.test" || profile.Name != "Jane Wanjiku" {
		t.Errorf("unexpected profile: %+v", profile)
	}

	if _, err := svc.Profile(ctx, "no-such-user"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}
