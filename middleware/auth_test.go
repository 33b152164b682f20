package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careconnect/models"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *models.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (r *fakeUserRepo) List(search string, skip, limit int64) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Count(search string) (int64, error)     { return 0, nil }
func (r *fakeUserRepo) CountByRole(role string) (int64, error) { return 0, nil }

func setupAuthRouter(t *testing.T, users *fakeUserRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(users), func(c *gin.Context) {
		principal, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"id": principal.ID, "role": principal.Role})
	})
	r.GET("/admin", JWTAuthMiddleware(users), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: models.RoleUser, IsActive: true},
		"u2": {ID: "u2", Role: models.RoleUser, IsActive: false},
	}}
	r := setupAuthRouter(t, users)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/protected", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(r, "/protected", "not-a-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateToken("u1", models.RoleUser, time.Hour)
		require.NoError(t, err)
		w := doGet(r, "/protected", token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "u1")
	})

	t.Run("deactivated account", func(t *testing.T) {
		token, err := utils.GenerateToken("u2", models.RoleUser, time.Hour)
		require.NoError(t, err)
		w := doGet(r, "/protected", token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown subject", func(t *testing.T) {
		token, err := utils.GenerateToken("ghost", models.RoleUser, time.Hour)
		require.NoError(t, err)
		w := doGet(r, "/protected", token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: models.RoleUser, IsActive: true},
		"a1": {ID: "a1", Role: models.RoleAdmin, IsActive: true},
	}}
	r := setupAuthRouter(t, users)

	userToken, err := utils.GenerateToken("u1", models.RoleUser, time.Hour)
	require.NoError(t, err)
	w := doGet(r, "/admin", userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := utils.GenerateToken("a1", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	w = doGet(r, "/admin", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
}
