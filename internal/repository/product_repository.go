package repository

import "furnshop/internal/domain"

type ProductRepository interface {
	FindAll() ([]domain.Product, error)
	FindByID(id uint64) (*domain.Product, error)
	Create(product *domain.Product) error
	Update(product *domain.Product) error
	Delete(id uint64) error
}
