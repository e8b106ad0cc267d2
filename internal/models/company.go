package models

import "time"

// CompanyInformation is the singleton-like company profile rendered in
// page footers and the about page. Only the first row is ever read.
type CompanyInformation struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	CompanyName string `gorm:"type:varchar(150);not null" json:"company_name"`
	About       string `gorm:"type:text" json:"about"`
	Address     string `gorm:"type:text" json:"address"`

	SalesEmail   string `gorm:"type:varchar(254)" json:"sales_email"`
	SalesPhone   string `gorm:"type:varchar(30)" json:"sales_phone"`
	GeneralEmail string `gorm:"type:varchar(254)" json:"general_email"`
	GeneralPhone string `gorm:"type:varchar(30)" json:"general_phone"`

	// SocialLinks maps platform name to profile URL.
	SocialLinks JSON   `gorm:"type:text" json:"social_links"`
	Logo        string `gorm:"type:varchar(500)" json:"logo"`

	MetaTitle       string `gorm:"type:varchar(200)" json:"meta_title"`
	MetaDescription string `gorm:"type:varchar(300)" json:"meta_description"`
	MetaKeywords    string `gorm:"type:varchar(300)" json:"meta_keywords"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FAQs []CompanyFAQ `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
}

// TableName sets the table name.
func (CompanyInformation) TableName() string {
	return "company_information"
}

// CompanyFAQ is a site-wide FAQ entry attached to the company profile.
type CompanyFAQ struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	Question  string    `gorm:"type:varchar(500);not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Priority  int       `gorm:"default:0;index" json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (CompanyFAQ) TableName() string {
	return "company_faqs"
}
