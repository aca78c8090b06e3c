package gate

import "testing"

type fixtureSession struct {
	role   string
	tier   string
	status string
}

func (s fixtureSession) Role() string               { return s.role }
func (s fixtureSession) SubscriptionTier() string   { return s.tier }
func (s fixtureSession) SubscriptionStatus() string { return s.status }

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		sess fixtureSession
		want bool
	}{
		{"admin always allowed", fixtureSession{RoleAdmin, TierGuest, StatusInactive}, true},
		{"active basic subscriber", fixtureSession{"analyst", TierBasic, StatusActive}, true},
		{"active pro subscriber", fixtureSession{"analyst", TierPro, StatusActive}, true},
		{"inactive subscriber", fixtureSession{"analyst", TierPro, StatusInactive}, false},
		{"cancelled subscriber", fixtureSession{"analyst", TierBasic, StatusCancelled}, false},
		{"active guest tier", fixtureSession{"analyst", TierGuest, StatusActive}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.sess); got != tt.want {
				t.Errorf("Allowed(%+v) = %v, want %v", tt.sess, got, tt.want)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	locked := Decide(fixtureSession{"analyst", TierGuest, StatusInactive})
	if locked.Visible || !locked.Blur {
		t.Errorf("locked decision = %+v, want blurred and not visible", locked)
	}
	if locked.Overlay == nil || len(locked.Overlay.Plans) != 2 {
		t.Fatalf("locked overlay must offer exactly two paid plans, got %+v", locked.Overlay)
	}

	open := Decide(fixtureSession{RoleAdmin, TierGuest, StatusInactive})
	if !open.Visible || open.Blur || open.Overlay != nil {
		t.Errorf("admin decision = %+v, want plain visible content", open)
	}
}
