package repository

import "furnshop/internal/domain"

type UserRepository interface {
	FindByID(id uint64) (*domain.User, error)
	FindByName(name string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindAll() ([]domain.User, error)
	FindByRole(role domain.Role) ([]domain.User, error)
	Create(user *domain.User) error
	Update(user *domain.User) error
	// Delete removes the user and detaches their orders (user_id set to
	// NULL) so order history survives.
	Delete(id uint64) error
}
