package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protouch/protouch/internal/models"
)

// UserRepository defines operations for the User model
type UserRepository interface {
	Repository
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindAll(page, pageSize int) ([]*models.User, int64, error)
	UpdatePassword(userID uuid.UUID, passwordHash string) error
	UpdateRole(userID uuid.UUID, roleID uint) error
	UpdateSubscription(userID uuid.UUID, tier, status string) error
	ExistsByEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
}

type userRepository struct {
	*BaseRepository
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("email = ?", email).Preload("Role").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).Preload("Role").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll retrieves all users with pagination
func (r *userRepository) FindAll(page, pageSize int) ([]*models.User, int64, error) {
	var users []*models.User
	var count int64

	if err := r.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.DB.Offset(offset).Limit(pageSize).Preload("Role").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

// UpdatePassword updates a user's password
func (r *userRepository) UpdatePassword(userID uuid.UUID, passwordHash string) error {
	return r.DB.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

// UpdateRole updates a user's role
func (r *userRepository) UpdateRole(userID uuid.UUID, roleID uint) error {
	return r.DB.Model(&models.User{}).Where("id = ?", userID).Update("role_id", roleID).Error
}

// UpdateSubscription updates a user's subscription tier and status
func (r *userRepository) UpdateSubscription(userID uuid.UUID, tier, status string) error {
	return r.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"subscription_tier":   tier,
		"subscription_status": status,
	}).Error
}

// ExistsByEmail checks if a user with the given email exists
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByUsername checks if a user with the given username exists
func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
