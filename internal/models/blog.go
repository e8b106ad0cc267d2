package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	metaDescriptionMaxLen = 160
	// Truncation backs off to the last space only when that space sits
	// past this index, so very short leading words don't produce a
	// useless one-word description.
	metaDescriptionMinCut = 50
)

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// DeriveMetaDescription builds a search snippet from blog content:
// markup stripped, whitespace collapsed, cut at 160 characters on a
// word boundary where possible.
func DeriveMetaDescription(content string) string {
	text := htmlTagPattern.ReplaceAllString(content, " ")
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= metaDescriptionMaxLen {
		return text
	}
	text = string(runes[:metaDescriptionMaxLen])
	if idx := strings.LastIndex(text, " "); idx > metaDescriptionMinCut {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// ProductBlog is an article attached to a single product.
type ProductBlog struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Title     string `gorm:"type:varchar(200);not null" json:"title"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string `gorm:"type:text" json:"content"`
	Author    string `gorm:"type:varchar(100)" json:"author"`

	MetaTitle       string `gorm:"type:varchar(200)" json:"meta_title"`
	MetaDescription string `gorm:"type:varchar(300)" json:"meta_description"`
	MetaKeywords    string `gorm:"type:varchar(300)" json:"meta_keywords"`

	PublishedAt time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (ProductBlog) TableName() string {
	return "product_blogs"
}

// BeforeSave derives the meta description when the author left it empty.
func (b *ProductBlog) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(b.MetaDescription) == "" {
		b.MetaDescription = DeriveMetaDescription(b.Content)
	}
	if b.PublishedAt.IsZero() {
		b.PublishedAt = time.Now()
	}
	return nil
}

// CompanyBlog is a company-wide article.
type CompanyBlog struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CompanyID uint   `gorm:"index" json:"company_id"`
	Title     string `gorm:"type:varchar(200);not null" json:"title"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string `gorm:"type:text" json:"content"`
	Author    string `gorm:"type:varchar(100)" json:"author"`

	MetaTitle       string `gorm:"type:varchar(200)" json:"meta_title"`
	MetaDescription string `gorm:"type:varchar(300)" json:"meta_description"`
	MetaKeywords    string `gorm:"type:varchar(300)" json:"meta_keywords"`

	PublishedAt time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (CompanyBlog) TableName() string {
	return "company_blogs"
}

// BeforeSave derives the meta description when the author left it empty.
func (b *CompanyBlog) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(b.MetaDescription) == "" {
		b.MetaDescription = DeriveMetaDescription(b.Content)
	}
	if b.PublishedAt.IsZero() {
		b.PublishedAt = time.Now()
	}
	return nil
}
