package cache

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/quickcare/backend-api-go/pkg/logger"
	"go.uber.org/zap"
)

const TTL = 5 * time.Minute

// uncachedPrefixes are live or per-user and always reach their handlers.
var uncachedPrefixes = []string{
	"/healthcheck",
	"/health",
	"/metrics",
	"/monitor",
	"/recommendations",
	"/devices",
	"/users",
	"/auth",
	"/caches",
	"/debug",
}

type Store interface {
	Get(key string) []byte
	SetKey(key string, value interface{}, ttl time.Duration)
	Delete(key string) error
}

func New(cacheRepo Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skip(c.Path()) {
			return c.Next()
		}

		reqURI := c.OriginalURL()
		hashURL := uuid.NewSHA1(uuid.NameSpaceOID, []byte(reqURI)).String()
		if c.Method() != http.MethodGet {
			// Since there will be an update, better to remove cache entries for this url
			if err := cacheRepo.Delete(hashURL); err != nil {
				log.Logger().Warn("could not delete cache entry", zap.String("uri", reqURI), zap.Error(err))
			}
			return c.Next()
		}

		cacheData := cacheRepo.Get(hashURL)
		if len(cacheData) == 0 {
			if err := c.Next(); err != nil {
				return err
			}
			if c.Response().StatusCode() == fiber.StatusOK && len(c.Response().Body()) > 0 {
				cacheRepo.SetKey(hashURL, c.Response().Body(), TTL)
			}
			return nil
		}

		c.Set("x-cached-response", "true")
		c.Response().SetBodyRaw(cacheData)
		c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
		return nil
	}
}

func skip(path string) bool {
	for _, prefix := range uncachedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
