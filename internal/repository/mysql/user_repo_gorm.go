package mysql

import (
	"errors"
	"log"

	"furnshop/internal/domain"
	"furnshop/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByID(id uint64) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("user FindByID: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByName(name string) (*domain.User, error) {
	var u domain.User
	err := r.db.Where("name = ?", name).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("user FindByName: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("user FindByEmail: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindAll() ([]domain.User, error) {
	var out []domain.User
	if err := r.db.Order("created_at").Find(&out).Error; err != nil {
		log.Printf("user FindAll: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *userRepo) FindByRole(role domain.Role) ([]domain.User, error) {
	var out []domain.User
	if err := r.db.Where("role = ?", role).Order("created_at").Find(&out).Error; err != nil {
		log.Printf("user FindByRole: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *userRepo) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		log.Printf("user Create: %v", err)
		return err
	}
	return nil
}

func (r *userRepo) Update(user *domain.User) error {
	return r.db.Save(user).Error
}

// Delete detaches the user's orders before removing the row so historical
// orders keep their snapshots with a NULL owner.
func (r *userRepo) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Order{}).
			Where("user_id = ?", id).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, id).Error
	})
}
