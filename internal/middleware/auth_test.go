package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type fakeAuth struct {
	users map[string]*model.User
	err   error
}

func (f fakeAuth) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, util.ErrUnauthenticated
}

func newRouter(auth Authenticator, capability model.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionMiddleware(auth, "session_token"), RequireCapability(capability), func(c *gin.Context) {
		util.Success(c, util.GetUserFromContext(c).Name)
	})
	return r
}

func TestSessionAndCapability(t *testing.T) {
	auth := fakeAuth{users: map[string]*model.User{
		"member-token": {Name: "Priya", Role: model.RoleUser},
		"admin-token":  {Name: "Arush T.", Role: model.RoleAdmin},
	}}

	tests := []struct {
		name       string
		capability model.Capability
		cookie     string
		bearer     string
		want       int
	}{
		{"no token", model.CapMember, "", "", http.StatusUnauthorized},
		{"unknown token", model.CapMember, "bogus", "", http.StatusUnauthorized},
		{"member via cookie", model.CapMember, "member-token", "", http.StatusOK},
		{"member via bearer", model.CapMember, "", "member-token", http.StatusOK},
		{"member on admin route", model.CapAdmin, "member-token", "", http.StatusForbidden},
		{"admin on admin route", model.CapAdmin, "admin-token", "", http.StatusOK},
		{"admin on member route", model.CapMember, "", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(auth, tt.capability)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session_token", Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestSessionMiddlewareStoreError(t *testing.T) {
	r := newRouter(fakeAuth{err: errors.New("db down")}, model.CapMember)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer anything")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestCookieTakesPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session_token", Value: "from-cookie"})
	c.Request.Header.Set("Authorization", "Bearer from-header")

	if got := SessionToken(c, "session_token"); got != "from-cookie" {
		t.Errorf("token = %q, want from-cookie", got)
	}
}
