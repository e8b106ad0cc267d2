package repository

import "time"

// ProductListFilter holds product listing criteria.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	CategorySlug string
	Search       string
	IsActive     *bool
	WithCategory bool
}

// BlogListFilter holds blog listing criteria, shared by product and
// company blogs.
type BlogListFilter struct {
	Page      int
	PageSize  int
	ProductID string
	Search    string
}

// ContactListFilter holds contact-request listing criteria.
type ContactListFilter struct {
	Page        int
	PageSize    int
	IsRead      *bool
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// DownloadEmailListFilter holds download-capture listing criteria.
type DownloadEmailListFilter struct {
	Page     int
	PageSize int
	Search   string
}
