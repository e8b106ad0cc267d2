package repository

import (
	"strings"

	"github.com/veltrachem-web/internal/models"

	"gorm.io/gorm"
)

// DownloadEmailRepository is the download-capture data access interface.
type DownloadEmailRepository interface {
	List(filter DownloadEmailListFilter) ([]models.DownloadEmail, int64, error)
	Create(record *models.DownloadEmail) error
	Delete(id string) error
}

// GormDownloadEmailRepository is the GORM implementation.
type GormDownloadEmailRepository struct {
	db *gorm.DB
}

// NewDownloadEmailRepository creates a download-capture repository.
func NewDownloadEmailRepository(db *gorm.DB) *GormDownloadEmailRepository {
	return &GormDownloadEmailRepository{db: db}
}

// List returns captured emails, most recent download first.
func (r *GormDownloadEmailRepository) List(filter DownloadEmailListFilter) ([]models.DownloadEmail, int64, error) {
	var records []models.DownloadEmail

	query := r.db.Model(&models.DownloadEmail{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR document_name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("downloaded_at DESC").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Create appends a capture row. Repeat downloads insert new rows.
func (r *GormDownloadEmailRepository) Create(record *models.DownloadEmail) error {
	return r.db.Create(record).Error
}

// Delete removes a capture row.
func (r *GormDownloadEmailRepository) Delete(id string) error {
	return r.db.Delete(&models.DownloadEmail{}, "id = ?", id).Error
}
