package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/testutil"
	"badge_studio_backend/internal/util"

	"gorm.io/gorm"
)

type memorySessionIndex struct {
	mu   sync.Mutex
	byID map[string]uint
}

func newMemorySessionIndex() *memorySessionIndex {
	return &memorySessionIndex{byID: make(map[string]uint)}
}

func (m *memorySessionIndex) Lookup(ctx context.Context, token string) (uint, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byID[token]
	return id, ok, nil
}

func (m *memorySessionIndex) Store(ctx context.Context, token string, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[token] = userID
	return nil
}

func (m *memorySessionIndex) Remove(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, token)
	return nil
}

func newTestAuthService(t *testing.T, index repository.SessionIndex) (*AuthService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	audit := NewAuditService(repository.NewAdminActionRepository(db))
	svc := NewAuthService(repository.NewUserRepository(db), audit, index, config.AuthConfig{
		AdminName:  config.DefaultAdminName,
		CookieName: "session_token",
	})
	return svc, db
}

func TestLoginCreatesUser(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, "Priya Sharma")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Priya Sharma" {
		t.Errorf("name = %q", user.Name)
	}
	if user.Role != model.RoleUser {
		t.Errorf("role = %s, want user", user.Role)
	}
	if len(token) < 40 {
		t.Errorf("token %q looks too short", token)
	}

	got, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated user %d, want %d", got.ID, user.ID)
	}
}

func TestLoginIsIdempotentAndRotatesToken(t *testing.T) {
	svc, db := newTestAuthService(t, nil)
	ctx := context.Background()

	first, oldToken, err := svc.Login(ctx, "Priya")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	svc.Now = func() time.Time { return time.Now().Add(time.Hour) }
	second, newToken, err := svc.Login(ctx, "Priya")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("second login created a new user (%d != %d)", second.ID, first.ID)
	}
	if oldToken == newToken {
		t.Fatal("token was not rotated")
	}

	var count int64
	db.Model(&model.User{}).Where("name = ?", "Priya").Count(&count)
	if count != 1 {
		t.Errorf("user rows = %d, want 1", count)
	}

	if _, err := svc.Authenticate(ctx, oldToken); !errors.Is(err, util.ErrUnauthenticated) {
		t.Errorf("old token: err = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.Authenticate(ctx, newToken); err != nil {
		t.Errorf("new token: %v", err)
	}
	if !second.LastActive.After(first.LastActive) {
		t.Error("LastActive was not refreshed")
	}
}

func TestLoginAdminNameIsExact(t *testing.T) {
	svc, db := newTestAuthService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		want model.UserRole
	}{
		{"Arush T.", model.RoleAdmin},
		{"arush t.", model.RoleUser},
		{"ARUSH T.", model.RoleUser},
		{"Arush T", model.RoleUser},
		{"Arush  T.", model.RoleUser},
		{"Arush T.!", model.RoleUser},
		{" Arush T.", model.RoleUser},
		{"Arush T. ", model.RoleUser},
		{"\tArush T.\n", model.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, _, err := svc.Login(ctx, tt.name)
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if user.Role != tt.want {
				t.Errorf("role = %s, want %s", user.Role, tt.want)
			}
		})
	}

	var admins int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&admins)
	if admins != 1 {
		t.Errorf("admins = %d, want 1", admins)
	}

	var logins int64
	db.Model(&model.AdminAction{}).Where("action = ?", model.ActionAdminLogin).Count(&logins)
	if logins != 1 {
		t.Errorf("admin_login audit rows = %d, want 1", logins)
	}
}

func TestLoginRejectsBlankName(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)
	for _, name := range []string{"", "   ", "\t"} {
		if _, _, err := svc.Login(context.Background(), name); !errors.Is(err, util.ErrInvalidInput) {
			t.Errorf("Login(%q) err = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, "Priya")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(ctx, user); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, util.ErrUnauthenticated) {
		t.Errorf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestAuthenticateUnknownToken(t *testing.T) {
	svc, _ := newTestAuthService(t, nil)
	for _, token := range []string{"", "not-a-real-token"} {
		if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, util.ErrUnauthenticated) {
			t.Errorf("Authenticate(%q) err = %v, want ErrUnauthenticated", token, err)
		}
	}
}

func TestSessionIndexCannotResurrectOldToken(t *testing.T) {
	index := newMemorySessionIndex()
	svc, _ := newTestAuthService(t, index)
	ctx := context.Background()

	user, oldToken, err := svc.Login(ctx, "Priya")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id, ok, _ := index.Lookup(ctx, oldToken); !ok || id != user.ID {
		t.Fatalf("token not indexed after login")
	}

	if _, _, err := svc.Login(ctx, "Priya"); err != nil {
		t.Fatalf("second login: %v", err)
	}
	if _, ok, _ := index.Lookup(ctx, oldToken); ok {
		t.Error("rotated token still in index")
	}

	// 索引中残留的旧令牌也必须以数据库为准
	index.Store(ctx, oldToken, user.ID)
	if _, err := svc.Authenticate(ctx, oldToken); !errors.Is(err, util.ErrUnauthenticated) {
		t.Errorf("stale index entry: err = %v, want ErrUnauthenticated", err)
	}
}
