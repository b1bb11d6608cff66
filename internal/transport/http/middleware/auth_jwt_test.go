package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rental-backend/internal/core/auth"
	"car-rental-backend/internal/domain"
)

func newGate(t *testing.T, allowed ...domain.Role) (*gin.Engine, *auth.JWTer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}

	r := gin.New()
	r.GET("/protected", AuthJWT(j, allowed...), func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	return r, j
}

func tokenFor(t *testing.T, j *auth.JWTer, role domain.Role) string {
	t.Helper()
	tok, err := j.Issue(&domain.Customer{CustomerID: 7, FirstName: "A", LastName: "B", Role: role})
	require.NoError(t, err)
	return tok
}

func doGet(r *gin.Engine, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	r, _ := newGate(t, domain.RoleUser)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestAuthJWT_EmptyBearer(t *testing.T) {
	r, _ := newGate(t, domain.RoleUser)

	w := doGet(r, "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWT_BadToken(t *testing.T) {
	r, _ := newGate(t, domain.RoleUser)

	w := doGet(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestAuthJWT_RoleMatch(t *testing.T) {
	r, j := newGate(t, domain.RoleUser)

	w := doGet(r, "Bearer "+tokenFor(t, j, domain.RoleUser))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

// 角色不符也回 401，不是 403
func TestAuthJWT_RoleMismatch(t *testing.T) {
	r, j := newGate(t, domain.RoleAdmin)

	w := doGet(r, "Bearer "+tokenFor(t, j, domain.RoleUser))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestAuthJWT_AnyRoleWhenUnrestricted(t *testing.T) {
	r, j := newGate(t)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleUser} {
		w := doGet(r, "Bearer "+tokenFor(t, j, role))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAuthJWT_BothRoles(t *testing.T) {
	r, j := newGate(t, domain.RoleAdmin, domain.RoleUser)

	w := doGet(r, "Bearer "+tokenFor(t, j, domain.RoleUser))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "Bearer "+tokenFor(t, j, domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}
