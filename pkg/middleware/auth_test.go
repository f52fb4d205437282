package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/excelytics/excelytics/pkg/auth"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	byID map[uint]*models.Account
}

func (f *fakeAccounts) Create(*models.Account) error { return nil }
func (f *fakeAccounts) GetByID(id uint) (*models.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, weberrors.ErrNotFound
	}
	return a, nil
}
func (f *fakeAccounts) GetByEmail(string) (*models.Account, error) { return nil, weberrors.ErrNotFound }
func (f *fakeAccounts) EmailExists(string) (bool, error)           { return false, nil }
func (f *fakeAccounts) Update(*models.Account) error               { return nil }
func (f *fakeAccounts) Delete(uint) error                          { return nil }
func (f *fakeAccounts) ListByRole(models.Role) ([]models.Account, error) {
	return nil, nil
}
func (f *fakeAccounts) ListUsersAndAdmins() ([]models.Account, error)  { return nil, nil }
func (f *fakeAccounts) ListPendingAdmins() ([]models.Account, error)   { return nil, nil }
func (f *fakeAccounts) DeleteExpiredPendingAdmins(time.Time) error     { return nil }

func setupRouter(t *testing.T, repo *fakeAccounts, tokens *auth.Issuer, roles ...models.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	group := r.Group("/", RequireAuth(repo, tokens))
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/probe", func(c *gin.Context) {
		account := GetAccount(c)
		c.JSON(http.StatusOK, gin.H{"id": account.ID})
	})
	return r
}

func TestRequireAuth_NoToken(t *testing.T) {
	t.Parallel()

	r := setupRouter(t, &fakeAccounts{}, auth.NewIssuer([]byte("s"), time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BadToken(t *testing.T) {
	t.Parallel()

	r := setupRouter(t, &fakeAccounts{}, auth.NewIssuer([]byte("s"), time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer junk")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeletedAccount(t *testing.T) {
	t.Parallel()

	tokens := auth.NewIssuer([]byte("s"), time.Hour)
	tok, err := tokens.Generate(5, models.RoleUser)
	require.NoError(t, err)

	r := setupRouter(t, &fakeAccounts{byID: map[uint]*models.Account{}}, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_QueryTokenFallback(t *testing.T) {
	t.Parallel()

	tokens := auth.NewIssuer([]byte("s"), time.Hour)
	account := &models.Account{Role: models.RoleUser}
	account.ID = 5
	tok, err := tokens.Generate(5, models.RoleUser)
	require.NoError(t, err)

	r := setupRouter(t, &fakeAccounts{byID: map[uint]*models.Account{5: account}}, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe?token="+tok, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	tokens := auth.NewIssuer([]byte("s"), time.Hour)

	user := &models.Account{Role: models.RoleUser}
	user.ID = 1
	superAdmin := &models.Account{Role: models.Role("Super-Admin")}
	superAdmin.ID = 2

	repo := &fakeAccounts{byID: map[uint]*models.Account{1: user, 2: superAdmin}}
	r := setupRouter(t, repo, tokens, models.RoleSuperAdmin)

	userTok, err := tokens.Generate(1, user.Role)
	require.NoError(t, err)
	superTok, err := tokens.Generate(2, superAdmin.Role)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+userTok)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// role comparison ignores case
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+superTok)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
