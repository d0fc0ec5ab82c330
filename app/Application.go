package app

import (
	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quickcare/backend-api-go/auth"
	"github.com/quickcare/backend-api-go/handler"
	authmw "github.com/quickcare/backend-api-go/middleware/auth"
	"github.com/quickcare/backend-api-go/middleware/cache"
	_ "github.com/quickcare/backend-api-go/swagger"
	"github.com/quickcare/backend-api-go/viewstate"
)

// UserStore holds profile documents.
type UserStore interface {
	viewstate.ProfileStore
	viewstate.ProfileWriter
}

// CacheStore is the response cache and the device location store.
type CacheStore interface {
	cache.Store
	handler.Pruner
	handler.DeviceLocations
}

// Recommendations is the recommendation repository as the gateway sees it.
type Recommendations interface {
	viewstate.Recommender
	handler.HealthChecker
}

// Publisher sends domain events.
type Publisher interface {
	handler.SearchPublisher
	handler.UserPublisher
}

type Dependencies struct {
	APIKey          string
	Users           UserStore
	Cache           CacheStore
	Recommendations Recommendations
	Identity        auth.Provider
	Tokens          *auth.TokenIssuer
	Publisher       Publisher
}

type Application struct {
	app  *fiber.App
	deps Dependencies
}

func New(deps Dependencies) *Application {
	app := fiber.New()
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New())
	app.Use(recover.New())
	app.Use(authmw.New(deps.APIKey, deps.Tokens))
	app.Use(pprof.New())
	app.Use(cache.New(deps.Cache))

	a := &Application{app: app, deps: deps}
	a.Register()
	return a
}

func (a *Application) Register() {
	recommendations := handler.NewRecommendationsHandler(a.deps.Recommendations, a.deps.Cache, a.deps.Publisher)
	authHandler := handler.NewAuthHandler(a.deps.Identity, a.deps.Users, a.deps.Tokens, a.deps.Publisher)
	profiles := handler.NewProfileHandler(a.deps.Users)

	a.app.Get("/", handler.RedirectSwagger)
	a.app.Get("/healthcheck", handler.HealthCheck)
	a.app.Get("/health/backend", handler.BackendHealth(a.deps.Recommendations))
	a.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	a.app.Get("/monitor", monitor.New())
	a.app.Get("/conditions", handler.GetConditionsHandler)
	a.app.Get("/recommendations", recommendations.HandleSearch)
	a.app.Get("/devices/:id/recommendations", recommendations.HandleDeviceSearch)
	a.app.Put("/devices/:id/location", recommendations.HandleUpdateLocation)
	a.app.Post("/auth/signup", authHandler.HandleSignup)
	a.app.Post("/auth/login", authHandler.HandleLogin)
	a.app.Get("/users/:id", profiles.HandleGet)
	a.app.Patch("/users/:id", profiles.HandleUpdate)
	a.app.Get("/caches/prune", handler.InvalidateCache(a.deps.Cache))
	route := a.app.Group("/swagger")
	route.Get("*", swagger.HandlerDefault)
}

func (a *Application) App() *fiber.App {
	return a.app
}

func (a *Application) Listen(addr string) error {
	return a.app.Listen(addr)
}

func (a *Application) Shutdown() error {
	return a.app.Shutdown()
}
