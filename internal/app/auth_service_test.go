package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutricoach/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	getByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	createFn        func(ctx context.Context, username, passwordHash string) (*domain.User, error)
	countFn         func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, errors.New("not found")
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.New("not found")
}

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, passwordHash)
	}
	return &domain.User{ID: 1, Username: username, PasswordHash: passwordHash}, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockSessionRepo struct {
	createFn     func(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error
	getByTokenFn func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn     func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, userID, token, userAgent, ip, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, errors.New("not found")
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error { return nil }

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	password := "testpass123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "testuser", PasswordHash: string(hash)}, nil
		},
	}
	sessions := &mockSessionRepo{
		createFn: func(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
			if userID != 1 {
				t.Errorf("expected userID 1, got %d", userID)
			}
			if token == "" {
				t.Error("token should not be empty")
			}
			if userAgent != "test-agent" {
				t.Errorf("expected user agent to be stored, got %q", userAgent)
			}
			return nil
		},
	}

	svc := NewAuthService(users, sessions)
	token, err := svc.Login(ctx, "testuser", password, "test-agent", "127.0.0.1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Error("expected token, got empty string")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "testuser", PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(users, &mockSessionRepo{})
	_, err := svc.Login(context.Background(), "testuser", "wrong", "ua", "ip")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(users, &mockSessionRepo{})
	_, err := svc.Login(context.Background(), "nobody", "pass", "ua", "ip")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_SSOAccountHasNoPassword(t *testing.T) {
	// SSO-provisioned accounts carry an empty hash; password login must fail.
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "sso-user", PasswordHash: ""}, nil
		},
	}
	svc := NewAuthService(users, &mockSessionRepo{})
	_, err := svc.Login(context.Background(), "sso-user", "", "ua", "ip")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateSession(t *testing.T) {
	user := &domain.User{ID: 1, Username: "testuser"}

	t.Run("valid", func(t *testing.T) {
		sessions := &mockSessionRepo{
			getByTokenFn: func(ctx context.Context, token string) (*domain.Session, error) {
				return &domain.Session{
					Token: token, UserID: 1, UserAgent: "ua",
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
		}
		users := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) { return user, nil },
		}
		svc := NewAuthService(users, sessions)
		got, err := svc.ValidateSession(context.Background(), "tok", "ua")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 1 {
			t.Errorf("expected user 1, got %d", got.ID)
		}
	})

	t.Run("expired", func(t *testing.T) {
		deleted := false
		sessions := &mockSessionRepo{
			getByTokenFn: func(ctx context.Context, token string) (*domain.Session, error) {
				return &domain.Session{
					Token: token, UserID: 1, UserAgent: "ua",
					ExpiresAt: time.Now().Add(-time.Minute),
				}, nil
			},
			deleteFn: func(ctx context.Context, token string) error {
				deleted = true
				return nil
			},
		}
		svc := NewAuthService(&mockUserRepo{}, sessions)
		_, err := svc.ValidateSession(context.Background(), "tok", "ua")
		if err != ErrSessionExpired {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
		if !deleted {
			t.Error("expected expired session to be deleted")
		}
	})

	t.Run("user agent mismatch", func(t *testing.T) {
		sessions := &mockSessionRepo{
			getByTokenFn: func(ctx context.Context, token string) (*domain.Session, error) {
				return &domain.Session{
					Token: token, UserID: 1, UserAgent: "other",
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
		}
		svc := NewAuthService(&mockUserRepo{}, sessions)
		_, err := svc.ValidateSession(context.Background(), "tok", "ua")
		if err != ErrSessionExpired {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepo{}, &mockSessionRepo{})
		_, err := svc.ValidateSession(context.Background(), "tok", "ua")
		if err != ErrSessionNotFound {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestAuthService_CreateInitialUser(t *testing.T) {
	t.Run("creates when empty", func(t *testing.T) {
		created := false
		users := &mockUserRepo{
			countFn: func(ctx context.Context) (int, error) { return 0, nil },
			createFn: func(ctx context.Context, username, passwordHash string) (*domain.User, error) {
				created = true
				if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("pass")); err != nil {
					t.Error("stored hash does not match password")
				}
				return &domain.User{ID: 1, Username: username}, nil
			},
		}
		svc := NewAuthService(users, &mockSessionRepo{})
		if err := svc.CreateInitialUser(context.Background(), "admin", "pass"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Error("expected user to be created")
		}
	})

	t.Run("refuses when users exist", func(t *testing.T) {
		users := &mockUserRepo{
			countFn: func(ctx context.Context) (int, error) { return 1, nil },
		}
		svc := NewAuthService(users, &mockSessionRepo{})
		if err := svc.CreateInitialUser(context.Background(), "admin", "pass"); err == nil {
			t.Fatal("expected error when users already exist")
		}
	})
}

func TestAuthService_LoginWithUser_AutoProvisions(t *testing.T) {
	created := false
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if created {
				return &domain.User{ID: 5, Username: username}, nil
			}
			return nil, nil
		},
		createFn: func(ctx context.Context, username, passwordHash string) (*domain.User, error) {
			created = true
			if passwordHash != "" {
				t.Error("SSO accounts must have an empty password hash")
			}
			return &domain.User{ID: 5, Username: username}, nil
		},
	}
	svc := NewAuthService(users, &mockSessionRepo{})
	token, err := svc.LoginWithUser(context.Background(), "sso@example.com", "ua", "ip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || !created {
		t.Errorf("expected provisioned session, got token=%q created=%v", token, created)
	}
}
