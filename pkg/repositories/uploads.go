package repositories

import (
	"errors"

	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"gorm.io/gorm"
)

type IUploadRepository interface {
	Create(upload *models.Upload) error
	GetByID(id uint) (*models.Upload, error)
	GetByIDAndOwner(id uint, ownerID uint) (*models.Upload, error)
	ListByOwner(ownerID uint) ([]models.Upload, error)
	Delete(id uint) error
}

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (u *UploadRepository) Create(upload *models.Upload) error {
	return u.db.Create(upload).Error
}

func (u *UploadRepository) GetByID(id uint) (*models.Upload, error) {
	var upload models.Upload
	err := u.db.First(&upload, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, weberrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (u *UploadRepository) GetByIDAndOwner(id uint, ownerID uint) (*models.Upload, error) {
	var upload models.Upload
	err := u.db.Where("id = ? AND account_id = ?", id, ownerID).First(&upload).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, weberrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (u *UploadRepository) ListByOwner(ownerID uint) ([]models.Upload, error) {
	var uploads []models.Upload
	err := u.db.Where("account_id = ?", ownerID).Order("created_at desc").Find(&uploads).Error
	return uploads, err
}

func (u *UploadRepository) Delete(id uint) error {
	return u.db.Delete(&models.Upload{}, id).Error
}
