package repository

import (
	"errors"
	"strings"

	"github.com/veltrachem-web/internal/models"

	"gorm.io/gorm"
)

// ContactRepository is the contact-request data access interface.
type ContactRepository interface {
	List(filter ContactListFilter) ([]models.Contact, int64, error)
	GetByID(id string) (*models.Contact, error)
	Create(contact *models.Contact) error
	SetRead(ids []uint, read bool) (int64, error)
	Delete(id string) error
	CountUnread() (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ContactRepository
}

// GormContactRepository is the GORM implementation.
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a contact repository.
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormContactRepository) WithTx(tx *gorm.DB) ContactRepository {
	if tx == nil {
		return r
	}
	return &GormContactRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormContactRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List returns contact requests, newest first.
func (r *GormContactRepository) List(filter ContactListFilter) ([]models.Contact, int64, error) {
	var contacts []models.Contact

	query := r.db.Model(&models.Contact{})
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// GetByID fetches a contact request by primary key.
func (r *GormContactRepository) GetByID(id string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// Create inserts a contact request.
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// SetRead flips the read flag on a batch of requests and returns the
// number of rows touched.
func (r *GormContactRepository) SetRead(ids []uint, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Contact{}).
		Where("id IN ?", ids).
		Update("is_read", read)
	return result.RowsAffected, result.Error
}

// Delete removes a contact request.
func (r *GormContactRepository) Delete(id string) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}

// CountUnread counts unread requests for the admin dashboard badge.
func (r *GormContactRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
