package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSales    Role = "sales"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSales, RoleAdmin:
		return true
	}
	return false
}

// Staff reports whether the role may run back-office operations
// (order lists, payment and delivery updates).
func (r Role) Staff() bool {
	return r == RoleAdmin || r == RoleSales
}

type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"size:255"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"type:enum('customer','sales','admin');default:'customer'"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
