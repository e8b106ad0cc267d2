package service

import (
	"errors"
	"strings"

	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"
)

// ErrEmailRequired rejects a download-gate capture without an email.
var ErrEmailRequired = errors.New("Email is required")

// DownloadService records emails captured by the gated-download flow.
type DownloadService struct {
	repo repository.DownloadEmailRepository
}

// NewDownloadService creates a download service.
func NewDownloadService(repo repository.DownloadEmailRepository) *DownloadService {
	return &DownloadService{repo: repo}
}

// Record appends a capture row. fileURL and userAgent are optional.
func (s *DownloadService) Record(email, fileURL, userAgent string) (*models.DownloadEmail, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	record := models.DownloadEmail{
		Email:        email,
		DocumentName: DeriveDocumentName(fileURL),
		UserAgent:    userAgent,
	}
	if err := s.repo.Create(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeriveDocumentName extracts the last path segment of the downloaded
// URL, or "Unknown" when the URL is empty.
func DeriveDocumentName(fileURL string) string {
	if fileURL == "" {
		return "Unknown"
	}
	parts := strings.Split(fileURL, "/")
	return parts[len(parts)-1]
}

// List returns capture rows for the admin view.
func (s *DownloadService) List(filter repository.DownloadEmailListFilter) ([]models.DownloadEmail, int64, error) {
	return s.repo.List(filter)
}

// Delete removes a capture row. Restricted to superusers at the
// handler layer.
func (s *DownloadService) Delete(id string) error {
	return s.repo.Delete(id)
}
