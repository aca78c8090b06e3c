// internal/gate/gate.go
package gate

// Subscription tiers and statuses as stored on the user record
const (
	TierGuest = "guest"
	TierBasic = "basic"
	TierPro   = "pro"

	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusCancelled = "cancelled"

	RoleAdmin = "admin"
)

// Session exposes the viewer attributes the gate decides on. Handlers adapt
// JWT claims to this interface; tests use fixture sessions.
type Session interface {
	Role() string
	SubscriptionTier() string
	SubscriptionStatus() string
}

// Allowed reports whether the viewer may see gated report content:
// admins always, everyone else only with an active paid subscription.
func Allowed(s Session) bool {
	if s.Role() == RoleAdmin {
		return true
	}
	return s.SubscriptionStatus() == StatusActive && s.SubscriptionTier() != TierGuest
}

// PlanOption is one paid tier offered on the lock overlay
type PlanOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MonthlyPrice int    `json:"monthlyPrice"`
}

// Overlay is the fixed call-to-action shown over locked content
type Overlay struct {
	Message    string       `json:"message"`
	Plans      []PlanOption `json:"plans"`
	PricingURL string       `json:"pricingUrl"`
}

// Decision is the gate outcome for one viewer. When Visible is false the
// content is rendered blurred and non-interactive beneath the overlay.
type Decision struct {
	Visible bool     `json:"visible"`
	Blur    bool     `json:"blur"`
	Overlay *Overlay `json:"overlay,omitempty"`
}

// Decide evaluates the gate for a viewer
func Decide(s Session) Decision {
	if Allowed(s) {
		return Decision{Visible: true}
	}
	return Decision{
		Visible: false,
		Blur:    true,
		Overlay: &lockOverlay,
	}
}

var lockOverlay = Overlay{
	Message: "전체 분석 결과는 구독 후 확인할 수 있습니다",
	Plans: []PlanOption{
		{ID: "basic", Name: "베이직", MonthlyPrice: 9900},
		{ID: "pro", Name: "프로", MonthlyPrice: 29900},
	},
	PricingURL: "/pricing",
}
