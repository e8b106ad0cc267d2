package models

import "time"

// ProductCategory groups catalog products.
type ProductCategory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon"` // icon class name shown on the catalog page
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// TableName sets the table name.
func (ProductCategory) TableName() string {
	return "product_categories"
}
