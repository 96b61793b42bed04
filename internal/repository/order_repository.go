package repository

import (
	"time"

	"furnshop/internal/domain"
)

type OrderRepository interface {
	// Create persists the order and its items and decrements the stock of
	// every referenced product as one transaction.
	Create(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindByUser(userID uint64) ([]domain.Order, error)
	FindAll() ([]domain.Order, error)
	SetStatus(id uint64, status domain.OrderStatus) error
	SetPaid(id uint64, at time.Time) error
	SetDelivered(id uint64, at time.Time) error
	Delete(id uint64) error
}
