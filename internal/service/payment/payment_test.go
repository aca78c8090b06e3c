// internal/service/payment/payment_test.go
package payment

import (
	"testing"

	"github.com/google/uuid"

	"github.com/protouch/protouch/internal/config"
)

func testService() *Service {
	return NewService(&config.Config{
		PaymentPageURL:    "https://pay.example.com/checkout",
		PaymentMerchant:   "protouch",
		PaymentSecret:     "test-secret",
		PaymentReturnBase: "http://localhost:8080",
	})
}

func TestPlanByID(t *testing.T) {
	plan, err := PlanByID("pro")
	if err != nil {
		t.Fatalf("PlanByID(pro): %v", err)
	}
	if plan.Amount != 29900 || plan.Tier != "pro" {
		t.Errorf("pro plan = %+v", plan)
	}

	if _, err := PlanByID("enterprise"); err != ErrUnknownPlan {
		t.Errorf("expected ErrUnknownPlan, got %v", err)
	}
}

func TestCheckoutRoundTrip(t *testing.T) {
	svc := testService()
	plan, _ := PlanByID("basic")
	orderID := uuid.New()
	userID := uuid.New()

	form := svc.BuildCheckout(plan, orderID, userID, "user@protouch.kr")

	if form.Action != "https://pay.example.com/checkout" {
		t.Errorf("action = %s", form.Action)
	}
	if form.Fields["amount"] != "9900" {
		t.Errorf("amount = %s, want 9900", form.Fields["amount"])
	}
	if form.Fields["success_url"] != "http://localhost:8080/api/v1/payment/success" {
		t.Errorf("success_url = %s", form.Fields["success_url"])
	}

	// provider echoes the signed fields back
	cb := Callback{
		OrderID:     form.Fields["order_id"],
		PlanID:      form.Fields["plan_id"],
		Amount:      form.Fields["amount"],
		ProviderRef: "tx-123",
		Signature:   form.Fields["signature"],
	}
	if err := svc.VerifyCallback(cb); err != nil {
		t.Errorf("valid callback rejected: %v", err)
	}

	cb.Amount = "100"
	if err := svc.VerifyCallback(cb); err != ErrInvalidSignature {
		t.Errorf("tampered amount accepted: %v", err)
	}
}

func TestSuccessMessage(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	msg := NewSuccessMessage("pro", userID, orderID)

	if msg.Type != "PAYMENT_SUCCESS" {
		t.Errorf("type = %s", msg.Type)
	}
	if msg.PlanID != "pro" || msg.UserID != userID.String() || msg.OrderID != orderID.String() {
		t.Errorf("payload = %+v", msg)
	}
}
