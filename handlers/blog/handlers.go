package BlogHandler

import (
	"log/slog"

	"github.com/okanay/backend-blog-core/events"
	BlogRepository "github.com/okanay/backend-blog-core/repositories/blog"
	cache "github.com/okanay/backend-blog-core/services/cache"
)

type Handler struct {
	BlogRepository *BlogRepository.Repository
	Cache          *cache.Cache
	Producer       *events.Producer
	Logger         *slog.Logger
}

func NewHandler(b *BlogRepository.Repository, c *cache.Cache, p *events.Producer, l *slog.Logger) *Handler {
	return &Handler{
		BlogRepository: b,
		Cache:          c,
		Producer:       p,
		Logger:         l,
	}
}
