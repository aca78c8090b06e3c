// internal/service/payment/payment.go
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/protouch/protouch/internal/config"
	"github.com/protouch/protouch/internal/gate"
)

var (
	ErrUnknownPlan      = errors.New("unknown plan")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

// Plan is a purchasable subscription tier
type Plan struct {
	ID     string
	Name   string
	Tier   string
	Amount int
}

// plans mirrors the lock overlay offering; plan IDs double as tier names
var plans = map[string]Plan{
	"basic": {ID: "basic", Name: "베이직", Tier: gate.TierBasic, Amount: 9900},
	"pro":   {ID: "pro", Name: "프로", Tier: gate.TierPro, Amount: 29900},
}

// PlanByID looks up a purchasable plan
func PlanByID(id string) (Plan, error) {
	p, ok := plans[strings.ToLower(id)]
	if !ok {
		return Plan{}, ErrUnknownPlan
	}
	return p, nil
}

// Service builds hosted-payment-page requests and verifies callbacks
type Service struct {
	cfg *config.Config
}

// NewService creates the payment service
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// CheckoutForm is the field set the client form-POSTs to the hosted
// payment page
type CheckoutForm struct {
	Action string            `json:"action"`
	Fields map[string]string `json:"fields"`
}

// BuildCheckout creates the signed form-POST payload for one order
func (s *Service) BuildCheckout(plan Plan, orderID, userID uuid.UUID, buyerEmail string) CheckoutForm {
	fields := map[string]string{
		"merchant_id":  s.cfg.PaymentMerchant,
		"order_id":     orderID.String(),
		"user_id":      userID.String(),
		"plan_id":      plan.ID,
		"product_name": fmt.Sprintf("ProTouch %s 구독", plan.Name),
		"amount":       fmt.Sprintf("%d", plan.Amount),
		"buyer_email":  buyerEmail,
		"success_url":  s.cfg.PaymentReturnBase + "/api/v1/payment/success",
		"fail_url":     s.cfg.PaymentReturnBase + "/api/v1/payment/fail",
	}
	fields["signature"] = s.sign(fields["order_id"], fields["plan_id"], fields["amount"])
	return CheckoutForm{Action: s.cfg.PaymentPageURL, Fields: fields}
}

// Callback is what the provider sends to the success/fail return URLs
type Callback struct {
	OrderID     string `json:"order_id" form:"order_id"`
	PlanID      string `json:"plan_id" form:"plan_id"`
	Amount      string `json:"amount" form:"amount"`
	ProviderRef string `json:"provider_ref" form:"provider_ref"`
	Signature   string `json:"signature" form:"signature"`
}

// VerifyCallback checks the callback signature against our secret
func (s *Service) VerifyCallback(cb Callback) error {
	expected := s.sign(cb.OrderID, cb.PlanID, cb.Amount)
	if !hmac.Equal([]byte(expected), []byte(cb.Signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// sign computes the HMAC-SHA256 over the order fields the provider echoes
// back
func (s *Service) sign(orderID, planID, amount string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.PaymentSecret))
	mac.Write([]byte(orderID + "|" + planID + "|" + amount))
	return hex.EncodeToString(mac.Sum(nil))
}

// SuccessMessage is the payload posted back to the opener window when the
// popup payment flow completes
type SuccessMessage struct {
	Type    string `json:"type"`
	PlanID  string `json:"planId"`
	UserID  string `json:"userId"`
	OrderID string `json:"orderId"`
}

// MessageTypeSuccess is the postMessage discriminator the client listens for
const MessageTypeSuccess = "PAYMENT_SUCCESS"

// NewSuccessMessage builds the popup completion payload
func NewSuccessMessage(planID string, userID, orderID uuid.UUID) SuccessMessage {
	return SuccessMessage{
		Type:    MessageTypeSuccess,
		PlanID:  planID,
		UserID:  userID.String(),
		OrderID: orderID.String(),
	}
}
