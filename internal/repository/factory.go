package repository

import (
	"gorm.io/gorm"
)

// Factory manages all repositories
type Factory struct {
	UserRepository   UserRepository
	ReportRepository ReportRepository
	OrderRepository  OrderRepository
}

// NewRepositoryFactory creates a repository factory with all repositories
func NewRepositoryFactory(db *gorm.DB) *Factory {
	return &Factory{
		UserRepository:   NewUserRepository(db),
		ReportRepository: NewReportRepository(db),
		OrderRepository:  NewOrderRepository(db),
	}
}
