package mysql

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"furnshop/internal/domain"
	"furnshop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Create inserts the order with its items and decrements stock for every
// referenced product inside a single transaction. Each product row is locked
// with SELECT ... FOR UPDATE so concurrent checkouts serialize their
// decrements; a missing product or insufficient stock rolls the whole order
// back. Products are locked in ascending id order so every transaction
// acquires row locks in the same sequence; the inserted item rows keep the
// order they were submitted in.
func (r *orderRepo) Create(order *domain.Order) error {
	locked := make([]domain.OrderItem, len(order.Items))
	copy(locked, order.Items)
	sort.Slice(locked, func(i, j int) bool {
		return locked[i].ProductID < locked[j].ProductID
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range locked {
			item := &locked[i]

			var product domain.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, item.ProductID)
			}
			if err != nil {
				log.Printf("order create: lock product %d: %v", item.ProductID, err)
				return err
			}

			if product.Quantity < item.Quantity {
				return fmt.Errorf("%w: %s has %d left, %d requested",
					domain.ErrInsufficientStock, product.Name, product.Quantity, item.Quantity)
			}

			if err := tx.Model(&domain.Product{}).
				Where("id = ?", product.ID).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity)).Error; err != nil {
				log.Printf("order create: decrement product %d: %v", product.ID, err)
				return err
			}
		}

		if err := tx.Create(order).Error; err != nil {
			log.Printf("order create: insert: %v", err)
			return err
		}
		return nil
	})
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("Items").Preload("User").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("order FindByID: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUser(userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		log.Printf("order FindByUser: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Preload("Items").Preload("User").
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		log.Printf("order FindAll: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) SetStatus(id uint64, status domain.OrderStatus) error {
	return r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) SetPaid(id uint64, at time.Time) error {
	return r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_paid": true, "paid_at": at}).Error
}

func (r *orderRepo) SetDelivered(id uint64, at time.Time) error {
	return r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_delivered": true, "delivered_at": at}).Error
}

// Delete removes the order and its items. Stock is intentionally not
// restored; deletion is a write-off, not a cancellation.
func (r *orderRepo) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, id).Error
	})
}
