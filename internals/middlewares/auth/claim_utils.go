package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// storeClaimsToLocals menyalin klaim yang dipakai lintas handler ke c.Locals
// (seragam dengan accessor di internals/helpers/token.go).
func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
	}
	c.Locals("user_id", userID)

	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if tenantID, ok := claims["tenant_id"].(string); ok {
		c.Locals("tenant_id", tenantID)
	}

	// branch_ids hanya ada di token staff biasa
	if rawIDs, ok := claims["branch_ids"].([]interface{}); ok {
		ids := make([]string, 0, len(rawIDs))
		for _, v := range rawIDs {
			if s, ok := v.(string); ok {
				ids = append(ids, s)
			}
		}
		c.Locals("branch_ids", ids)
	}

	return nil
}
