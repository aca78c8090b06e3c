// internal/models/models.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role represents a user role in the system
type Role struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);unique;not null;index"`
	Description string `gorm:"type:text"`
	// Relationships
	Users []User `gorm:"foreignKey:RoleID"`
}

// User represents a system user with their subscription state
type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username           string         `gorm:"type:varchar(100);unique;not null;index"`
	Email              string         `gorm:"type:varchar(255);unique;not null;index"`
	PasswordHash       string         `gorm:"type:varchar(255);not null"`
	RoleID             uint           `gorm:"not null;index"`
	Role               Role           `gorm:"foreignKey:RoleID"`
	SubscriptionTier   string         `gorm:"type:varchar(50);not null;default:'guest';index"` // guest, basic, pro
	SubscriptionStatus string         `gorm:"type:varchar(50);not null;default:'inactive';index"`
	CreatedAt          time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
	// Relationships
	Reports        []Report       `gorm:"foreignKey:UserID"`
	Orders         []Order        `gorm:"foreignKey:UserID"`
	UserActivities []UserActivity `gorm:"foreignKey:UserID"`
}

// Website represents a site that was analyzed
type Website struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	URL       string         `gorm:"type:varchar(2048);not null;index"`
	SiteName  string         `gorm:"type:varchar(255);index"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	// Relationships
	Reports []Report `gorm:"foreignKey:WebsiteID"`
}

// Report stores one completed UI/UX analysis. Result holds the full
// AnalysisResult payload as jsonb; it is written once and never mutated.
type Report struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WebsiteID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Website       Website        `gorm:"foreignKey:WebsiteID"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	User          User           `gorm:"foreignKey:UserID"`
	Status        string         `gorm:"type:varchar(50);not null;default:'pending';index"` // pending, running, completed, failed
	OverallScore  int            `gorm:"index"`
	Result        datatypes.JSON `gorm:"type:jsonb"`
	FailureReason string         `gorm:"type:text"`
	StartedAt     time.Time      `gorm:"default:null;index"`
	CompletedAt   time.Time      `gorm:"default:null;index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// Order represents one payment round trip with the hosted payment page
type Order struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	User        User           `gorm:"foreignKey:UserID"`
	PlanID      string         `gorm:"type:varchar(50);not null;index"` // basic, pro
	Amount      int            `gorm:"not null"`
	Status      string         `gorm:"type:varchar(50);not null;default:'pending';index"` // pending, paid, failed
	ProviderRef string         `gorm:"type:varchar(255);index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// UserActivity logs user actions in the system
type UserActivity struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	User       User           `gorm:"foreignKey:UserID"`
	ActionType string         `gorm:"type:varchar(100);not null;index"` // login, analyze, export_pdf, export_guideline, checkout
	EntityType string         `gorm:"type:varchar(100);index"`          // report, order, etc.
	EntityID   uuid.UUID      `gorm:"type:uuid;index"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
}
