package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.String(http.StatusOK, "%d %s", utils.CurrentUserID(c), utils.CurrentRole(c))
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareExposesUserIDAndRole(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleManager, testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(newAuthRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprintf("42 %s", entity.RoleManager), w.Body.String())
}

func TestAuthMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	r := newAuthRouter()

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer not-a-token").Code)
}

func TestAuthMiddlewareEnforcesRole(t *testing.T) {
	token, err := utils.GenerateToken(7, entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(newAuthRouter(entity.RoleManager), "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCurrentUserIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, uint(0), utils.CurrentUserID(c))
	assert.Equal(t, "", utils.CurrentRole(c))
}
