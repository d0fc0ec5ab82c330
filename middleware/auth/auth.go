package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	identity "github.com/quickcare/backend-api-go/auth"
)

const (
	ApiKeyHeaderName = "X-Api-Key"
	LocalUserID      = "userID"
)

type TokenValidator interface {
	Validate(token string) (*identity.Claims, error)
}

// New guards operational endpoints with the API key and profile endpoints
// with a bearer session token. A valid bearer token anywhere else is
// accepted and attached to the request, but not required.
func New(apiKey string, tokens TokenValidator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		path := ctx.Path()

		apiKeyNeeded := strings.Contains(path, "pprof") || strings.HasPrefix(path, "/caches")
		if apiKeyNeeded && (apiKey == "" || ctx.Get(ApiKeyHeaderName) != apiKey) {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		tokenNeeded := strings.HasPrefix(path, "/users")
		if bearer := bearerToken(ctx.Get(fiber.HeaderAuthorization)); bearer != "" {
			claims, err := tokens.Validate(bearer)
			if err == nil {
				ctx.Locals(LocalUserID, claims.UserID)
			} else if tokenNeeded {
				return ctx.SendStatus(fiber.StatusUnauthorized)
			}
		} else if tokenNeeded {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		return ctx.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
