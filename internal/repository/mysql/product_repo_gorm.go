package mysql

import (
	"errors"
	"log"

	"furnshop/internal/domain"
	"furnshop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("product FindAll: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByID(id uint64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("product FindByID: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Create(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		log.Printf("product Create: %v", err)
		return err
	}
	return nil
}

// Update overwrites the product row. The row is locked first so an admin
// stock correction serializes with concurrent checkout decrements against
// the same product.
func (r *productRepo) Update(product *domain.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current domain.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, product.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		if err != nil {
			return err
		}
		return tx.Model(&current).
			Select("name", "description", "price", "quantity", "category", "image_url", "is_featured").
			Updates(map[string]any{
				"name":        product.Name,
				"description": product.Description,
				"price":       product.Price,
				"quantity":    product.Quantity,
				"category":    product.Category,
				"image_url":   product.ImageURL,
				"is_featured": product.IsFeatured,
			}).Error
	})
}

func (r *productRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Product{}, id).Error
}
