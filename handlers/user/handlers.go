package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	R2Repository "github.com/okanay/backend-blog-core/repositories/r2"
	UserRepository "github.com/okanay/backend-blog-core/repositories/user"
	"github.com/okanay/backend-blog-core/services"
)

type Handler struct {
	UserRepository *UserRepository.Repository
	Session        *services.SessionService
	Deleter        *services.AccountDeletionCoordinator
	Storage        *R2Repository.Repository
}

func NewHandler(u *UserRepository.Repository, s *services.SessionService, d *services.AccountDeletionCoordinator, r2 *R2Repository.Repository) *Handler {
	return &Handler{
		UserRepository: u,
		Session:        s,
		Deleter:        d,
		Storage:        r2,
	}
}

// secureCookies is false only in debug mode so local clients without TLS
// still receive the refresh cookie.
func secureCookies() bool {
	return gin.Mode() != gin.DebugMode
}

func setRefreshCookie(c *gin.Context, name, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		name,
		token,
		maxAge,
		"/",
		"", // Domain - browser will use the current domain
		secureCookies(),
		true, // HttpOnly
	)
}
