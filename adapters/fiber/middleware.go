package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/lborres/gatehouse/pkg/crypto"
)

// requireAuth validates the auth cookie and stores the verified claims
// in the context for downstream handlers. Verification is two-step:
// the token must check out cryptographically AND its session record
// must still exist, so logout revokes access immediately.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	token := c.Cookies(authCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthenticated",
		})
	}

	claims, err := a.auth.Authenticate(c.Context(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	c.Locals("claims", claims)
	return c.Next()
}

// ClaimsFromContext returns the verified claims stored by requireAuth,
// or nil when the request is unauthenticated.
func ClaimsFromContext(c fiber.Ctx) *crypto.AuthClaims {
	claims, _ := c.Locals("claims").(*crypto.AuthClaims)
	return claims
}
