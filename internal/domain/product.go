package domain

import "time"

type Category string

const (
	// CategoryUncategorized is the placeholder assigned to freshly created
	// draft products until an admin edits them.
	CategoryUncategorized Category = "Uncategorized"
	CategoryMDFSheets     Category = "MDF Sheets"
	CategoryFurniture     Category = "Finished Furniture"
	CategoryAccessories   Category = "Accessories"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryUncategorized, CategoryMDFSheets, CategoryFurniture, CategoryAccessories:
		return true
	}
	return false
}

type Product struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int64     `json:"quantity" gorm:"not null"`
	Category    Category  `json:"category" gorm:"size:100;not null"`
	ImageURL    string    `json:"imageUrl" gorm:"size:255"`
	IsFeatured  bool      `json:"isFeatured" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
