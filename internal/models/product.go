package models

import (
	"strings"
	"time"
)

// Product is a catalog entry with its specification sheet fields.
type Product struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Priority     int    `gorm:"default:0;index" json:"priority"` // higher appears first
	Name         string `gorm:"type:varchar(200);not null" json:"name"`
	Slug         string `gorm:"uniqueIndex;not null" json:"slug"`
	CategoryID   uint   `gorm:"not null;index" json:"category_id"`
	ShortDesc    string `gorm:"type:text" json:"short_description"`
	DetailedDesc string `gorm:"type:text" json:"detailed_description"`

	// Specification sheet fields, all free text and optional.
	Purity          string `gorm:"type:varchar(50)" json:"purity"`
	Packaging       string `gorm:"type:varchar(100)" json:"packaging"`
	Application     string `gorm:"type:varchar(100)" json:"application"`
	Grade           string `gorm:"type:varchar(100)" json:"grade"`
	Form            string `gorm:"type:varchar(100)" json:"form"`
	CASNumber       string `gorm:"type:varchar(50)" json:"cas_number"`
	Formula         string `gorm:"type:varchar(100)" json:"formula"`
	Appearance      string `gorm:"type:varchar(100)" json:"appearance"`
	Assay           string `gorm:"type:varchar(100)" json:"assay"`
	MolecularWeight string `gorm:"type:varchar(50)" json:"molecular_weight"`
	Density         string `gorm:"type:varchar(50)" json:"density"`
	BoilingPoint    string `gorm:"type:varchar(50)" json:"boiling_point"`
	MeltingPoint    string `gorm:"type:varchar(50)" json:"melting_point"`

	Image    string `gorm:"type:varchar(500)" json:"image"`
	IconText string `gorm:"type:varchar(10)" json:"icon_text"` // shown when no image is uploaded
	Video    string `gorm:"type:varchar(500)" json:"video"`
	CoAPDF   string `gorm:"type:varchar(500)" json:"coa_pdf"` // certificate of analysis
	TDSPDF   string `gorm:"type:varchar(500)" json:"tds_pdf"` // technical data sheet

	ISOCertifications StringArray `gorm:"type:json" json:"iso_certifications"`

	MetaTitle       string `gorm:"type:varchar(200)" json:"meta_title"`
	MetaDescription string `gorm:"type:varchar(300)" json:"meta_description"`
	MetaKeywords    string `gorm:"type:varchar(300)" json:"meta_keywords"`

	IsActive  bool      `gorm:"index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category     ProductCategory      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	FAQs         []ProductFAQ         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
	Applications []ProductApplication `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
	Blogs        []ProductBlog        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"blogs,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// SpecEntry is one labelled row of the rendered specification table.
type SpecEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Specs returns the populated specification fields in display order.
// Empty fields are omitted.
func (p *Product) Specs() []SpecEntry {
	candidates := []SpecEntry{
		{"Purity", p.Purity},
		{"Packaging", p.Packaging},
		{"Application", p.Application},
		{"Grade", p.Grade},
		{"Form", p.Form},
		{"CAS Number", p.CASNumber},
		{"Formula", p.Formula},
		{"Appearance", p.Appearance},
		{"Assay", p.Assay},
		{"Molecular Weight", p.MolecularWeight},
		{"Density", p.Density},
		{"Boiling Point", p.BoilingPoint},
		{"Melting Point", p.MeltingPoint},
	}
	specs := make([]SpecEntry, 0, len(candidates))
	for _, entry := range candidates {
		if strings.TrimSpace(entry.Value) == "" {
			continue
		}
		specs = append(specs, entry)
	}
	return specs
}

// ProductFAQ is a question/answer pair shown on the product page.
type ProductFAQ struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Question  string    `gorm:"type:varchar(300);not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Priority  int       `gorm:"index" json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name.
func (ProductFAQ) TableName() string {
	return "product_faqs"
}

// ProductApplication is a use-case entry shown on the product page.
type ProductApplication struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(100)" json:"icon"`
	Priority    int       `gorm:"index" json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name.
func (ProductApplication) TableName() string {
	return "product_applications"
}
