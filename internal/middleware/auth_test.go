package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techhub_backend/internal/auth"
	"techhub_backend/internal/models"
	"techhub_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, _ *models.User) error { return nil }
func (r *stubUserRepo) Update(_ context.Context, _ string, _ map[string]interface{}) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (r *stubUserRepo) FindAll(_ context.Context, _, _ int64) ([]models.User, error) {
	return nil, nil
}
func (r *stubUserRepo) CountByRole(_ context.Context, _ models.UserRole) (int64, error) {
	return 0, nil
}

type stubSessionRepo struct {
	byToken map[string]*models.Session
}

func (r *stubSessionRepo) Create(_ context.Context, _ *models.Session) error { return nil }
func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*models.Session, error) {
	if s, ok := r.byToken[token]; ok {
		return s, nil
	}
	return nil, repositories.ErrSessionNotFound
}
func (r *stubSessionRepo) DeleteByToken(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type gateFixture struct {
	issuer   *auth.TokenIssuer
	users    *stubUserRepo
	sessions *stubSessionRepo
}

func newGateFixture() *gateFixture {
	return &gateFixture{
		issuer:   auth.NewTokenIssuer("test-secret", 30),
		users:    &stubUserRepo{byID: map[string]*models.User{}, byEmail: map[string]*models.User{}},
		sessions: &stubSessionRepo{byToken: map[string]*models.Session{}},
	}
}

func (f *gateFixture) addUser(id, email string, role models.UserRole, active bool) *models.User {
	u := &models.User{ID: id, Email: email, Role: role, IsActive: active, IsVerified: true}
	f.users.byID[id] = u
	f.users.byEmail[email] = u
	return u
}

func (f *gateFixture) addSession(token, userID string, expiresAt time.Time) {
	f.sessions.byToken[token] = &models.Session{
		ID:           "s-" + token,
		UserID:       userID,
		SessionToken: token,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now(),
	}
}

func (f *gateFixture) router(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(f.issuer, f.users, f.sessions))

	chain := append([]gin.HandlerFunc{RequireAuth()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	r.GET("/protected", chain...)
	return r
}

func doGet(r *gin.Engine, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_BearerToken(t *testing.T) {
	f := newGateFixture()
	f.addUser("u1", "ana@upe.edu.py", models.UserRoleStudent, true)
	token, err := f.issuer.CreateAccessToken("ana@upe.edu.py", "u1")
	require.NoError(t, err)

	w := doGet(f.router(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_NoCredential(t *testing.T) {
	f := newGateFixture()

	w := doGet(f.router(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestAuthenticate_ExpiredBearer(t *testing.T) {
	f := newGateFixture()
	f.addUser("u1", "ana@upe.edu.py", models.UserRoleStudent, true)
	expired := auth.NewTokenIssuer("test-secret", -1)
	token, err := expired.CreateAccessToken("ana@upe.edu.py", "u1")
	require.NoError(t, err)

	w := doGet(f.router(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_WrongSecretBearer(t *testing.T) {
	f := newGateFixture()
	f.addUser("u1", "ana@upe.edu.py", models.UserRoleStudent, true)
	otro := auth.NewTokenIssuer("otro-secreto", 30)
	token, err := otro.CreateAccessToken("ana@upe.edu.py", "u1")
	require.NoError(t, err)

	w := doGet(f.router(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	f := newGateFixture()
	f.addUser("u1", "ana@upe.edu.py", models.UserRoleStudent, true)
	f.addSession("tok-valido", "u1", time.Now().Add(time.Hour))

	w := doGet(f.router(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-valido"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_SessionExpiryBoundary(t *testing.T) {
	f := newGateFixture()
	f.addUser("u1", "ana@upe.edu.py", models.UserRoleStudent, true)
	// Un segundo en el futuro sigue viva, un segundo en el pasado no.
	f.addSession("tok-vivo", "u1", time.Now().Add(time.Second))
	f.addSession("tok-muerto", "u1", time.Now().Add(-time.Second))

	w := doGet(f.router(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-vivo"})
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(f.router(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-muerto"})
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_BearerTakesPrecedence(t *testing.T) {
	f := newGateFixture()
	f.addUser("u1", "ana@upe.edu.py", models.UserRoleStudent, true)
	f.addUser("u2", "otro@upe.edu.py", models.UserRoleCompany, true)
	f.addSession("tok-de-u2", "u2", time.Now().Add(time.Hour))

	token, err := f.issuer.CreateAccessToken("ana@upe.edu.py", "u1")
	require.NoError(t, err)

	w := doGet(f.router(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-de-u2"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"u1"`)
}

func TestRequireAuth_InactiveAccount(t *testing.T) {
	f := newGateFixture()
	f.addUser("u1", "ana@upe.edu.py", models.UserRoleStudent, false)
	f.addSession("tok-valido", "u1", time.Now().Add(time.Hour))

	w := doGet(f.router(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-valido"})
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Matrix(t *testing.T) {
	cases := []struct {
		name string
		role models.UserRole
		gate gin.HandlerFunc
		want int
	}{
		{"admin en gate admin", models.UserRoleAdmin, RequireRole(models.UserRoleAdmin), http.StatusOK},
		{"estudiante en gate admin", models.UserRoleStudent, RequireRole(models.UserRoleAdmin), http.StatusForbidden},
		{"empresa en gate admin", models.UserRoleCompany, RequireRole(models.UserRoleAdmin), http.StatusForbidden},
		{"estudiante en gate estudiante", models.UserRoleStudent, RequireRole(models.UserRoleStudent), http.StatusOK},
		{"admin en gate estudiante", models.UserRoleAdmin, RequireRole(models.UserRoleStudent), http.StatusForbidden},
		{"empresa en gate empresa-o-admin", models.UserRoleCompany, RequireAnyRole(models.UserRoleCompany, models.UserRoleAdmin), http.StatusOK},
		{"admin en gate empresa-o-admin", models.UserRoleAdmin, RequireAnyRole(models.UserRoleCompany, models.UserRoleAdmin), http.StatusOK},
		{"estudiante en gate empresa-o-admin", models.UserRoleStudent, RequireAnyRole(models.UserRoleCompany, models.UserRoleAdmin), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newGateFixture()
			f.addUser("u1", "usuario@upe.edu.py", tc.role, true)
			f.addSession("tok", "u1", time.Now().Add(time.Hour))

			w := doGet(f.router(tc.gate), func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})
			})
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
