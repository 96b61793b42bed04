package services

import (
	"time"

	"furnshop/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func CreateTestProduct(id uint64, name string, price float64, qty int64) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: qty,
		Category: domain.CategoryFurniture,
		ImageURL: "/images/" + name + ".png",
	}
}

func CreateTestOrder(id uint64, userID uint64, status domain.OrderStatus) *domain.Order {
	uid := userID
	return &domain.Order{
		ID:              id,
		UserID:          &uid,
		ShippingAddress: `{"city":"Addis Ababa"}`,
		PaymentMethod:   "Bank Transfer",
		TotalPrice:      1000,
		Status:          status,
		CreatedAt:       time.Now(),
	}
}

func CreateTestUser(id uint64, name string, role domain.Role) *domain.User {
	return &domain.User{
		ID:   id,
		Name: name,
		Role: role,
	}
}

func HashTestPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

const (
	TestUserID      = uint64(7)
	TestOrderID     = uint64(1)
	TestProductID   = uint64(1)
	TestRootAdmin   = "Awoke"
	TestProductName = "Oak Coffee Table"
)
