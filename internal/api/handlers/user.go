// internal/api/handlers/user.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/protouch/protouch/internal/repository"
)

// UserHandler handles the admin back-office user operations
type UserHandler struct {
	UserRepo repository.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{UserRepo: repo}
}

// ListUsers returns a paginated user list
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := h.UserRepo.FindAll(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Database error",
		})
	}

	items := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		items = append(items, fiber.Map{
			"id":                 u.ID,
			"username":           u.Username,
			"email":              u.Email,
			"role":               u.Role.Name,
			"subscriptionTier":   u.SubscriptionTier,
			"subscriptionStatus": u.SubscriptionStatus,
			"created_at":         u.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"users":     items,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		},
	})
}

// UpdateRoleRequest changes a user's role
type UpdateRoleRequest struct {
	RoleID uint `json:"role_id" validate:"required"`
}

// UpdateRole changes a user's role
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user ID",
		})
	}

	req := new(UpdateRoleRequest)
	if err := c.BodyParser(req); err != nil || req.RoleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.UserRepo.UpdateRole(userID, req.RoleID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update role",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Role updated",
	})
}

// UpdateSubscriptionRequest changes a user's subscription state
type UpdateSubscriptionRequest struct {
	Tier   string `json:"tier" validate:"required,oneof=guest basic pro"`
	Status string `json:"status" validate:"required,oneof=active inactive cancelled"`
}

// UpdateSubscription lets admins adjust subscriptions manually, e.g. for
// refunds or comps
func (h *UserHandler) UpdateSubscription(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user ID",
		})
	}

	req := new(UpdateSubscriptionRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if !validTier(req.Tier) || !validStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown tier or status",
		})
	}

	if err := h.UserRepo.UpdateSubscription(userID, req.Tier, req.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update subscription",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subscription updated",
	})
}

func validTier(tier string) bool {
	return tier == "guest" || tier == "basic" || tier == "pro"
}

func validStatus(status string) bool {
	return status == "active" || status == "inactive" || status == "cancelled"
}
