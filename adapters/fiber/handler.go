package fiber

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/csrf"
	"github.com/rs/zerolog/log"

	"github.com/lborres/gatehouse/core"
	"github.com/lborres/gatehouse/pkg/crypto"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleCSRFToken hands out the header value for the double-submit
// check. The paired cookie is set by the CSRF middleware on the same
// response.
func (a *Adapter) handleCSRFToken(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"csrfToken": csrf.TokenFromContext(c)})
}

func (a *Adapter) handleRegister(c fiber.Ctx) error {
	var input credentials
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if _, err := a.auth.Register(c.Context(), input.Email, input.Password); err != nil {
		return a.handleAuthError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"ok": true})
}

func (a *Adapter) handleLogin(c fiber.Ctx) error {
	var input credentials
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return a.handleAuthError(c, err)
	}

	a.setAuthCookie(c, result.Token)
	return c.JSON(fiber.Map{"ok": true})
}

// handleLogout never fails the client-visible flow: session cleanup is
// best-effort and the cookie is cleared regardless.
func (a *Adapter) handleLogout(c fiber.Ctx) error {
	a.auth.Logout(c.Context(), c.Cookies(authCookieName))
	a.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (a *Adapter) handleWhoami(c fiber.Ctx) error {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthenticated",
		})
	}

	user, err := a.auth.Whoami(c.Context(), claims)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return a.handleAuthError(c, err)
	}

	return c.JSON(fiber.Map{"id": user.ID, "email": user.Email})
}

func (a *Adapter) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "env": a.config.Env})
}

// setAuthCookie stores the signed token in an HTTP-only, same-site
// strict cookie whose lifetime matches the token's own TTL.
func (a *Adapter) setAuthCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(crypto.TokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   a.config.AuthCookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (a *Adapter) clearAuthCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   a.config.AuthCookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// handleAuthError maps domain errors to HTTP responses. Unexpected
// errors are logged with full detail server-side and reported to the
// client only generically.
func (a *Adapter) handleAuthError(c fiber.Ctx, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("auth operation failed")
		return c.Status(status).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

var validationErrors = []error{
	core.ErrEmailRequired,
	core.ErrInvalidEmail,
	core.ErrPasswordRequired,
	core.ErrPasswordTooShort,
	core.ErrPasswordNoUpper,
	core.ErrPasswordNoLower,
	core.ErrPasswordNoDigit,
	core.ErrPasswordNoSymbol,
	core.ErrPasswordTooLong,
	core.ErrMalformedPassword,
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrSessionNotFound),
		errors.Is(err, crypto.ErrInvalidToken),
		errors.Is(err, crypto.ErrTokenExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound
	}

	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
