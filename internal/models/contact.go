package models

import (
	"strings"
	"time"
)

// ProductInterestChoices are the fixed product-interest options offered
// on the contact form, plus "other". An empty selection is allowed.
var ProductInterestChoices = []string{
	"MEA TRIAZINE 78%",
	"P-TOLUENE SULPHONIC ACID",
	"DIISOPROPYLAMINO ETHYLYNE DIAMINE",
	"SODIUM CUMENE SULPHONATE",
	"other",
}

// IsValidProductInterest reports whether value is an allowed selection.
func IsValidProductInterest(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	for _, choice := range ProductInterestChoices {
		if value == choice {
			return true
		}
	}
	return false
}

// Contact is a persisted contact-form submission.
type Contact struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Email   string `gorm:"type:varchar(254);not null" json:"email"`
	Company string `gorm:"type:varchar(150)" json:"company"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	// Product holds the product-interest selection as free text, not a
	// foreign key; removed products keep historical submissions intact.
	Product   string    `gorm:"type:varchar(50)" json:"product"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
}

// TableName sets the table name.
func (Contact) TableName() string {
	return "contacts"
}
