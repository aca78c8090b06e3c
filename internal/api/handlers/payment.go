// internal/api/handlers/payment.go
package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/protouch/protouch/internal/config"
	"github.com/protouch/protouch/internal/gate"
	"github.com/protouch/protouch/internal/models"
	"github.com/protouch/protouch/internal/repository"
	"github.com/protouch/protouch/internal/service/payment"
)

// PaymentHandler drives the hosted-payment-page round trip
type PaymentHandler struct {
	Repo    *repository.Factory
	Service *payment.Service
	Config  *config.Config
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(repo *repository.Factory, svc *payment.Service, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		Repo:    repo,
		Service: svc,
		Config:  cfg,
	}
}

// CheckoutRequest starts a payment for one plan
type CheckoutRequest struct {
	PlanID string `json:"planId" validate:"required,oneof=basic pro"`
}

// Checkout records a pending order and returns the signed form-POST
// payload the client submits to the hosted payment page
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	req := new(CheckoutRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	plan, err := payment.PlanByID(req.PlanID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "알 수 없는 요금제입니다",
		})
	}

	userID := c.Locals("userID").(uuid.UUID)

	var user models.User
	if err := h.Repo.UserRepository.FindByID(userID, &user); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid user",
		})
	}

	order := models.Order{
		UserID: userID,
		PlanID: plan.ID,
		Amount: plan.Amount,
		Status: "pending",
	}
	if err := h.Repo.OrderRepository.Create(&order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create order",
		})
	}

	form := h.Service.BuildCheckout(plan, order.ID, userID, user.Email)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"orderId":  order.ID,
			"checkout": form,
		},
	})
}

// Success handles the provider's success callback: verify the signature,
// mark the order paid, activate the subscription, and answer the popup
// with the postMessage relay page.
func (h *PaymentHandler) Success(c *fiber.Ctx) error {
	cb := new(payment.Callback)
	if err := c.BodyParser(cb); err != nil {
		if err := c.QueryParser(cb); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid callback",
			})
		}
	}

	if err := h.Service.VerifyCallback(*cb); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "결제 검증에 실패했습니다",
		})
	}

	orderID, err := uuid.Parse(cb.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid order ID",
		})
	}

	order, err := h.Repo.OrderRepository.FindPending(orderID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "주문을 찾을 수 없습니다",
		})
	}

	plan, err := payment.PlanByID(order.PlanID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "알 수 없는 요금제입니다",
		})
	}

	if err := h.Repo.OrderRepository.MarkPaid(order.ID, cb.ProviderRef); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update order",
		})
	}
	if err := h.Repo.UserRepository.UpdateSubscription(order.UserID, plan.Tier, gate.StatusActive); err != nil {
		log.Printf("failed to activate subscription for order %s: %v", order.ID, err)
	}

	msg := payment.NewSuccessMessage(plan.ID, order.UserID, order.ID)

	// The hosted page opens in a popup; answer with a relay page that
	// posts the completion message to the opener and closes itself.
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fmt.Sprintf(`<!DOCTYPE html>
<html lang="ko">
<head><meta charset="utf-8"><title>결제 완료</title></head>
<body>
<script>
if (window.opener) {
  window.opener.postMessage({type:%q,planId:%q,userId:%q,orderId:%q}, "*");
  window.close();
} else {
  window.location.href = "/pricing?paid=1";
}
</script>
<p>결제가 완료되었습니다. 이 창은 자동으로 닫힙니다.</p>
</body>
</html>`, msg.Type, msg.PlanID, msg.UserID, msg.OrderID))
}

// Fail handles the provider's failure callback
func (h *PaymentHandler) Fail(c *fiber.Ctx) error {
	cb := new(payment.Callback)
	if err := c.BodyParser(cb); err != nil {
		c.QueryParser(cb)
	}

	if orderID, err := uuid.Parse(cb.OrderID); err == nil {
		if err := h.Repo.OrderRepository.MarkFailed(orderID); err != nil {
			log.Printf("failed to mark order failed: %v", err)
		}
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(`<!DOCTYPE html>
<html lang="ko">
<head><meta charset="utf-8"><title>결제 실패</title></head>
<body>
<script>
if (window.opener) { window.close(); } else { window.location.href = "/pricing?failed=1"; }
</script>
<p>결제가 완료되지 않았습니다. 창을 닫고 다시 시도해 주세요.</p>
</body>
</html>`)
}

// Plans lists the purchasable plans shown on the pricing page; it mirrors
// the lock overlay offering
func (h *PaymentHandler) Plans(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": []fiber.Map{
			{"id": "basic", "name": "베이직", "monthlyPrice": 9900},
			{"id": "pro", "name": "프로", "monthlyPrice": 29900},
		},
	})
}
