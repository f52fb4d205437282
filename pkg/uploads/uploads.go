// Package uploads moves spreadsheet bytes between callers and the object
// store and keeps the metadata records in sync. Every read and delete path
// goes through the same ownership predicate.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/objectstore"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/excelytics/excelytics/pkg/spreadsheet"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier reaches the file owner's private room.
type Notifier interface {
	FileDeleted(accountID uint, fileID uint)
}

// Summarizer turns parsed rows into insight lines.
type Summarizer interface {
	SummarizeRows(rows []map[string]string) ([]string, error)
}

type Service struct {
	uploads    repositories.IUploadRepository
	store      objectstore.ObjectStore
	notifier   Notifier
	summarizer Summarizer
}

func NewService(uploads repositories.IUploadRepository, store objectstore.ObjectStore, notifier Notifier, summarizer Summarizer) *Service {
	return &Service{
		uploads:    uploads,
		store:      store,
		notifier:   notifier,
		summarizer: summarizer,
	}
}

// Store writes the bytes first and records metadata only after the object
// store confirms the write. If the metadata insert then fails the orphaned
// object is left behind; it is unreachable and harmless.
func (s *Service) Store(ctx context.Context, ownerID uint, filename, contentType string, size int64, reader io.Reader) (*models.Upload, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: no file uploaded", weberrors.ErrValidation)
	}

	key := uuid.New().String() + path.Ext(filename)
	if err := s.store.Put(ctx, key, reader, size, contentType); err != nil {
		logrus.Error(err)
		return nil, fmt.Errorf("%w: %v", weberrors.ErrStorageWriteFailed, err)
	}

	upload := &models.Upload{
		AccountID:    ownerID,
		OriginalName: filename,
		ObjectKey:    key,
		Size:         size,
		ContentType:  contentType,
	}
	if err := s.uploads.Create(upload); err != nil {
		logrus.Errorf("Object %s stored but metadata insert failed: %v", key, err)
		return nil, err
	}

	return upload, nil
}

// History lists the owner's uploads, newest first.
func (s *Service) History(ownerID uint) ([]models.Upload, error) {
	return s.uploads.ListByOwner(ownerID)
}

// Retrieve returns the metadata record and the stored bytes.
func (s *Service) Retrieve(ctx context.Context, id uint, requester *models.Account) (*models.Upload, []byte, error) {
	upload, err := s.authorized(id, requester)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.store.Get(ctx, upload.ObjectKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", weberrors.ErrStorageUnavailable, err)
	}

	return upload, data, nil
}

// Parse returns the first worksheet as header-keyed row maps.
func (s *Service) Parse(ctx context.Context, id uint, requester *models.Account) (*models.Upload, []map[string]string, error) {
	upload, data, err := s.Retrieve(ctx, id, requester)
	if err != nil {
		return nil, nil, err
	}

	rows, err := spreadsheet.Parse(data)
	if err != nil {
		return nil, nil, err
	}

	return upload, rows, nil
}

// Summarize parses the sheet and forwards a bounded prefix to the external
// summarization endpoint.
func (s *Service) Summarize(ctx context.Context, id uint, requester *models.Account) ([]string, error) {
	_, rows, err := s.Parse(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	return s.summarizer.SummarizeRows(rows)
}

// Delete removes the stored bytes and the metadata record, then tells the
// owner's room. Used for self-deletes and admin-initiated deletes alike.
func (s *Service) Delete(ctx context.Context, id uint, requester *models.Account) error {
	upload, err := s.authorized(id, requester)
	if err != nil {
		return err
	}

	return s.remove(ctx, upload)
}

// ListFor is the admin view of another account's uploads.
func (s *Service) ListFor(ownerID uint) ([]models.Upload, error) {
	return s.uploads.ListByOwner(ownerID)
}

// DeleteOwned is the admin delete path addressed by owner and file id; the
// pair must match, so a file id belonging to someone else reads as absent.
func (s *Service) DeleteOwned(ctx context.Context, ownerID, fileID uint) error {
	upload, err := s.uploads.GetByIDAndOwner(fileID, ownerID)
	if err != nil {
		return err
	}

	return s.remove(ctx, upload)
}

func (s *Service) remove(ctx context.Context, upload *models.Upload) error {
	if err := s.store.Remove(ctx, upload.ObjectKey); err != nil {
		return fmt.Errorf("%w: %v", weberrors.ErrStorageWriteFailed, err)
	}
	if err := s.uploads.Delete(upload.ID); err != nil {
		return err
	}

	s.notifier.FileDeleted(upload.AccountID, upload.ID)
	return nil
}

func (s *Service) authorized(id uint, requester *models.Account) (*models.Upload, error) {
	upload, err := s.uploads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if upload.AccountID != requester.ID && !requester.Role.IsAdminTier() {
		return nil, fmt.Errorf("%w: not the file owner", weberrors.ErrForbidden)
	}
	return upload, nil
}
