// Package fiber is the HTTP adapter: it wires the auth flows to routes
// and mounts the security middleware stack (headers, CSRF, rate limit).
package fiber

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/csrf"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/lborres/gatehouse/core"
)

const (
	authCookieName = "auth"
	csrfCookieName = "csrf_"

	bodyLimit = 100 * 1024 // request bodies are small JSON credentials

	// Brute-force mitigation on the auth endpoints.
	rateLimitMax    = 100
	rateLimitWindow = 10 * time.Minute
)

type Config struct {
	Env              string
	AuthCookieSecure bool
	CSRFCookieSecure bool
}

type Adapter struct {
	app    *fiber.App
	auth   *core.Auth
	config Config
}

func New(app *fiber.App, auth *core.Auth, config Config) *Adapter {
	return &Adapter{app: app, auth: auth, config: config}
}

// NewApp builds a fiber app with the JSON error contract the API
// promises: fiber-level errors keep their status, anything unexpected
// is logged in full and reported generically.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "gatehouse",
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})
}

func errorHandler(c fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

// RegisterRoutes mounts middleware and routes. Order matters: security
// headers first, then CSRF, then the rate-limited auth group.
func (a *Adapter) RegisterRoutes() {
	a.app.Use(recoverer.New())
	a.app.Use(helmet.New(helmetConfig()))
	a.app.Use(csrf.New(a.csrfConfig()))

	a.app.Get("/csrf-token", a.handleCSRFToken)
	a.app.Get("/healthz", a.handleHealth)

	auth := a.app.Group("/auth", limiter.New(limiter.Config{
		Max:        rateLimitMax,
		Expiration: rateLimitWindow,
	}))
	auth.Post("/register", a.handleRegister)
	auth.Post("/login", a.handleLogin)
	auth.Post("/logout", a.handleLogout)

	a.app.Get("/me", a.handleWhoami, a.requireAuth)

	a.app.Use(handleNotFound)
}

// helmetConfig mirrors conservative browser-hardening defaults: no
// inline scripts, no framing, same-origin isolation.
func helmetConfig() helmet.Config {
	return helmet.Config{
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; object-src 'none'; " +
			"base-uri 'self'; frame-ancestors 'none'; img-src 'self' data:; " +
			"connect-src 'self'; form-action 'self'; upgrade-insecure-requests",
		ReferrerPolicy:            "no-referrer",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
	}
}

// csrfConfig sets up the double-submit pattern: the token lives in an
// HTTP-only cookie and must be echoed back in the X-Csrf-Token header
// on every state-changing request. Clients fetch the header value from
// GET /csrf-token.
func (a *Adapter) csrfConfig() csrf.Config {
	return csrf.Config{
		CookieName:     csrfCookieName,
		CookieSameSite: "Strict",
		CookieSecure:   a.config.CSRFCookieSecure,
		CookieHTTPOnly: true,
		IdleTimeout:    time.Hour,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid CSRF token",
			})
		},
	}
}

func handleNotFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
}
