package gallery

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/picshelf/picshelf/internal/auth"
	"github.com/picshelf/picshelf/internal/models"
	"github.com/picshelf/picshelf/internal/storage"
)

var (
	// ErrDuplicateLabel covers both an existing label and an empty name.
	ErrDuplicateLabel = errors.New("label already exists or invalid label")
	// ErrEmptyFilename is returned when an uploaded file has no name.
	ErrEmptyFilename = errors.New("no selected file")
	// ErrUnsupportedType is returned for extensions outside the allow-list.
	ErrUnsupportedType = errors.New("allowed extensions: jpg, jpeg, png, gif")
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Upload is one file in an upload batch.
type Upload struct {
	Filename string
	Data     []byte
}

// Service owns the label registry and pagination over the backing file store.
type Service struct {
	files  storage.FileStore
	labels *storage.LabelStore
}

func NewService(files storage.FileStore, labels *storage.LabelStore) *Service {
	return &Service{
		files:  files,
		labels: labels,
	}
}

// ListImages returns one page of image records in the order the backing
// store lists them. Out-of-range pages yield an empty slice. Any failure
// reading the store degrades to an empty result rather than propagating.
func (s *Service) ListImages(page, perPage int) []models.ImageRecord {
	if page < 1 || perPage < 1 {
		return []models.ImageRecord{}
	}

	filenames, err := s.files.List()
	if err != nil {
		slog.Error("Failed to list images", "err", err)
		return []models.ImageRecord{}
	}

	start := (page - 1) * perPage
	if start >= len(filenames) {
		return []models.ImageRecord{}
	}
	end := start + perPage
	if end > len(filenames) {
		end = len(filenames)
	}

	records := make([]models.ImageRecord, 0, end-start)
	for _, filename := range filenames[start:end] {
		records = append(records, models.ImageRecord{
			Filename: filename,
			Path:     "/uploads/" + filename,
			Label:    s.labels.Get(filename),
		})
	}
	return records
}

// CreateLabel inserts a new label. Admin only; empty and duplicate names are
// rejected. Not idempotent: a repeated create fails with ErrDuplicateLabel.
func (s *Service) CreateLabel(actor *models.User, name string) error {
	if err := auth.Authorize(actor, auth.AdminOnly); err != nil {
		return err
	}
	if name == "" || !s.labels.Create(name) {
		return ErrDuplicateLabel
	}
	slog.Info("Label created", "label", name, "user", actor.ID)
	return nil
}

// DeleteLabels removes each named label. Admin only. Missing names are
// silently skipped, so deletion is idempotent and always succeeds.
func (s *Service) DeleteLabels(actor *models.User, names []string) error {
	if err := auth.Authorize(actor, auth.AdminOnly); err != nil {
		return err
	}
	s.labels.Delete(names...)
	slog.Info("Labels deleted", "labels", names, "user", actor.ID)
	return nil
}

// SaveUploads validates and persists an upload batch. Saving is not
// transactional: files stored before a later file fails remain stored and
// the error is still returned.
func (s *Service) SaveUploads(actor *models.User, uploads []Upload) error {
	if err := auth.Authorize(actor, auth.AnyAuthenticated); err != nil {
		return err
	}

	for _, up := range uploads {
		if up.Filename == "" {
			return ErrEmptyFilename
		}
		ext := strings.ToLower(filepath.Ext(up.Filename))
		if !allowedExtensions[ext] {
			return fmt.Errorf("file upload failed for %s: %w", up.Filename, ErrUnsupportedType)
		}

		filename := storage.SanitizeFilename(up.Filename)
		if filename == "" {
			return ErrEmptyFilename
		}
		if err := s.files.Save(filename, up.Data); err != nil {
			return fmt.Errorf("failed to save %s: %w", filename, err)
		}
		slog.Info("Image saved", "filename", filename, "size", humanize.Bytes(uint64(len(up.Data))), "user", actor.ID)
	}
	return nil
}
