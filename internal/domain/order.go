package domain

import "time"

type OrderStatus string

const (
	StatusPending  OrderStatus = "Pending"
	StatusApproved OrderStatus = "Approved"
)

type Order struct {
	ID     uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID *uint64 `json:"userId" gorm:"index"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`

	// ShippingAddress is opaque JSON supplied by the client; the server
	// never inspects it.
	ShippingAddress      string `json:"shippingAddress" gorm:"type:json;not null"`
	PaymentMethod        string `json:"paymentMethod" gorm:"size:255;not null"`
	PaymentScreenshotURL string `json:"paymentScreenshotUrl" gorm:"size:255"`

	ItemsPrice    float64 `json:"itemsPrice" gorm:"type:decimal(10,2);default:0"`
	TaxPrice      float64 `json:"taxPrice" gorm:"type:decimal(10,2);default:0"`
	ShippingPrice float64 `json:"shippingPrice" gorm:"type:decimal(10,2);default:0"`
	TotalPrice    float64 `json:"totalPrice" gorm:"type:decimal(10,2);default:0"`

	IsPaid      bool       `json:"isPaid" gorm:"default:false"`
	PaidAt      *time.Time `json:"paidAt"`
	IsDelivered bool       `json:"isDelivered" gorm:"default:false"`
	DeliveredAt *time.Time `json:"deliveredAt"`

	Status    OrderStatus `json:"status" gorm:"type:enum('Pending','Approved');default:'Pending'"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots a product at purchase time. ProductID links back to
// the catalog row, which may no longer exist.
type OrderItem struct {
	ID        uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64  `json:"orderId" gorm:"not null;index"`
	ProductID uint64  `json:"productId" gorm:"not null"`
	Name      string  `json:"name" gorm:"size:255;not null"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL  string  `json:"image" gorm:"size:255"`
	Quantity  int64   `json:"qty" gorm:"not null"`
}
