package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RoleMiddleware creates role-based access control middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Locals("role")
		if role == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized, role information missing",
			})
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if r == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Forbidden, insufficient permissions",
		})
	}
}

// AdminOnly middleware for admin-only routes
func AdminOnly() fiber.Handler {
	return RoleMiddleware("admin")
}

// ExpertOrAdmin middleware for back-office routes
func ExpertOrAdmin() fiber.Handler {
	return RoleMiddleware("expert", "admin")
}

// Self middleware ensures the user can only access their own resources
func Self(paramName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uuid.UUID)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized, user information missing",
			})
		}

		resourceOwnerID := c.Params(paramName)
		if resourceOwnerID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Missing resource identifier",
			})
		}

		if userID.String() != resourceOwnerID {
			// Admins can access everything
			role := c.Locals("role")
			if role == nil || role.(string) != "admin" {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"success": false,
					"error":   "Forbidden, you can only access your own resources",
				})
			}
		}

		return c.Next()
	}
}
