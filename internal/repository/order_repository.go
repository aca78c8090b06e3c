package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/protouch/protouch/internal/models"
)

// OrderRepository defines operations for payment orders
type OrderRepository interface {
	Repository
	FindPending(orderID uuid.UUID) (*models.Order, error)
	MarkPaid(orderID uuid.UUID, providerRef string) error
	MarkFailed(orderID uuid.UUID) error
}

type orderRepository struct {
	*BaseRepository
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{BaseRepository: NewBaseRepository(db)}
}

// FindPending loads an order that is still awaiting payment
func (r *orderRepository) FindPending(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.Where("id = ? AND status = ?", orderID, "pending").First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkPaid records a successful payment callback
func (r *orderRepository) MarkPaid(orderID uuid.UUID, providerRef string) error {
	return r.DB.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"status":       "paid",
		"provider_ref": providerRef,
	}).Error
}

// MarkFailed records a failed payment callback
func (r *orderRepository) MarkFailed(orderID uuid.UUID) error {
	return r.DB.Model(&models.Order{}).Where("id = ?", orderID).Update("status", "failed").Error
}
