package models

import "time"

// DownloadEmail records an email captured by the gated-download flow.
// Rows are append-only; repeat downloads produce new rows.
type DownloadEmail struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Email string `gorm:"type:varchar(254);not null;index" json:"email"`
	// DocumentName is the last path segment of the downloaded URL,
	// or "Unknown" when the URL yields nothing usable.
	DocumentName string    `gorm:"type:varchar(255)" json:"document_name"`
	UserAgent    string    `gorm:"type:text" json:"user_agent"`
	DownloadedAt time.Time `gorm:"index" json:"downloaded_at"`
}

// TableName sets the table name.
func (DownloadEmail) TableName() string {
	return "download_emails"
}
