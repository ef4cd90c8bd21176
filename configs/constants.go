package configs

import (
	"time"
)

const (
	// Project Rules
	PROJECT_NAME = "Blog Core - Backend"

	// Session Rules
	ACCESS_TOKEN_DURATION  = 15 * time.Minute
	REFRESH_TOKEN_DURATION = 24 * time.Hour
	REFRESH_TOKEN_NAME     = "blog_core_refresh_token"
	JWT_ISSUER             = "blog-core"

	// Password Rules
	BCRYPT_COST = 12

	// Login Rate Limit Rules
	LOGIN_MAX_ATTEMPTS = 10
	LOGIN_WINDOW       = 1 * time.Minute

	// Cache Rules
	LIST_CACHE_EXPIRATION = 5 * time.Minute

	// Event Rules
	EVENT_TOPIC           = "blog_events"
	EVENT_PUBLISH_TIMEOUT = 5 * time.Second
)
