package http

import (
	"encoding/json"
	"time"

	"furnshop/internal/domain"
)

// Requests

type orderItemRequest struct {
	Product uint64  `json:"product" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Qty     int64   `json:"qty" binding:"required"`
	Price   float64 `json:"price" binding:"min=0"`
	Image   string  `json:"image"`
}

type createOrderRequest struct {
	OrderItems           []orderItemRequest `json:"orderItems"`
	ShippingAddress      json.RawMessage    `json:"shippingAddress" binding:"required"`
	PaymentMethod        string             `json:"paymentMethod" binding:"required"`
	PaymentScreenshotURL string             `json:"paymentScreenshotUrl"`
	ItemsPrice           float64            `json:"itemsPrice" binding:"min=0"`
	TaxPrice             float64            `json:"taxPrice" binding:"min=0"`
	ShippingPrice        float64            `json:"shippingPrice" binding:"min=0"`
	TotalPrice           float64            `json:"totalPrice" binding:"min=0"`
}

type updateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Quantity    int64   `json:"quantity" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
	IsFeatured  bool    `json:"isFeatured"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
	// Role is accepted but ignored: public registration always yields a
	// customer account.
	Role string `json:"role"`
}

type loginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adminCreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Responses. Every entity also carries an `_id` alias of its identifier for
// compatibility with the existing storefront client.

type userResponse struct {
	ID       uint64      `json:"id"`
	LegacyID uint64      `json:"_id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

type authResponse struct {
	userResponse
	Token string `json:"token"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		LegacyID: u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
	}
}

type productResponse struct {
	ID          uint64          `json:"id"`
	LegacyID    uint64          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Quantity    int64           `json:"quantity"`
	Category    domain.Category `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	IsFeatured  bool            `json:"isFeatured"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		LegacyID:    p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type orderItemResponse struct {
	ID       uint64  `json:"id"`
	LegacyID uint64  `json:"_id"`
	Name     string  `json:"name"`
	Qty      int64   `json:"qty"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	// Product restores the original product reference under the name the
	// client expects.
	Product   uint64 `json:"product"`
	ProductID uint64 `json:"productId"`
}

type orderOwnerResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type orderResponse struct {
	ID                   uint64              `json:"id"`
	LegacyID             uint64              `json:"_id"`
	UserID               *uint64             `json:"userId"`
	User                 *orderOwnerResponse `json:"user,omitempty"`
	ShippingAddress      json.RawMessage     `json:"shippingAddress"`
	PaymentMethod        string              `json:"paymentMethod"`
	PaymentScreenshotURL string              `json:"paymentScreenshotUrl"`
	ItemsPrice           float64             `json:"itemsPrice"`
	TaxPrice             float64             `json:"taxPrice"`
	ShippingPrice        float64             `json:"shippingPrice"`
	TotalPrice           float64             `json:"totalPrice"`
	IsPaid               bool                `json:"isPaid"`
	PaidAt               *time.Time          `json:"paidAt"`
	IsDelivered          bool                `json:"isDelivered"`
	DeliveredAt          *time.Time          `json:"deliveredAt"`
	Status               domain.OrderStatus  `json:"status"`
	CreatedAt            time.Time           `json:"createdAt"`
	OrderItems           []orderItemResponse `json:"orderItems"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			ID:        it.ID,
			LegacyID:  it.ID,
			Name:      it.Name,
			Qty:       it.Quantity,
			Price:     it.Price,
			Image:     it.ImageURL,
			Product:   it.ProductID,
			ProductID: it.ProductID,
		})
	}

	resp := orderResponse{
		ID:                   o.ID,
		LegacyID:             o.ID,
		UserID:               o.UserID,
		ShippingAddress:      json.RawMessage(o.ShippingAddress),
		PaymentMethod:        o.PaymentMethod,
		PaymentScreenshotURL: o.PaymentScreenshotURL,
		ItemsPrice:           o.ItemsPrice,
		TaxPrice:             o.TaxPrice,
		ShippingPrice:        o.ShippingPrice,
		TotalPrice:           o.TotalPrice,
		IsPaid:               o.IsPaid,
		PaidAt:               o.PaidAt,
		IsDelivered:          o.IsDelivered,
		DeliveredAt:          o.DeliveredAt,
		Status:               o.Status,
		CreatedAt:            o.CreatedAt,
		OrderItems:           items,
	}
	if o.User != nil {
		resp.User = &orderOwnerResponse{
			ID:    o.User.ID,
			Name:  o.User.Name,
			Email: o.User.Email,
		}
	}
	return resp
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}
