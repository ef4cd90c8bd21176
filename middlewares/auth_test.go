package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanay/backend-blog-core/configs"
	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

func gatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.MustGet("user_id").(uuid.UUID).String(),
			"username": c.MustGet("username").(string),
			"role":     c.MustGet("role").(types.Role),
		})
	})
	return router
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")

	user := &types.User{ID: uuid.New(), Username: "jane", Membership: types.RoleEditor}
	token, err := utils.GenerateAccessToken(user)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	gatedRouter().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), user.ID.String())
	assert.Contains(t, recorder.Body.String(), "jane")
}

func TestAuthMiddlewareRejections(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")

	user := &types.User{ID: uuid.New(), Username: "jane", Membership: types.RoleEditor}
	validToken, err := utils.GenerateAccessToken(user)
	require.NoError(t, err)
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "tampered token", header: "Bearer " + validToken[:len(validToken)-2] + "xx"},
		{name: "refresh token in auth header", header: "Bearer " + refreshToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				request.Header.Set("Authorization", tc.header)
			}
			gatedRouter().ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestHasPermission(t *testing.T) {
	assert.False(t, HasPermission(types.RoleUser, configs.PermissionCreatePost))
	assert.True(t, HasPermission(types.RoleEditor, configs.PermissionCreatePost))
	assert.True(t, HasPermission(types.RoleEditor, configs.PermissionEditPost))
	assert.True(t, HasPermission(types.RoleEditor, configs.PermissionDeletePost))
	assert.False(t, HasPermission(types.RoleEditor, configs.PermissionManageStaff))
	assert.True(t, HasPermission(types.RoleAdmin, configs.PermissionDeletePost))
	assert.True(t, HasPermission(types.RoleAdmin, configs.PermissionManageStaff))
	assert.False(t, HasPermission(types.Role("Unknown"), configs.PermissionCreatePost))
}
