package repositories

import (
	"errors"

	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"gorm.io/gorm"
)

type IChartRepository interface {
	Create(chart *models.Chart) error
	GetByID(id uint) (*models.Chart, error)
	ListByUploadAndOwner(uploadID uint, ownerID uint) ([]models.Chart, error)
	DeleteOwned(id uint, ownerID uint) error
}

type ChartRepository struct {
	db *gorm.DB
}

func NewChartRepository(db *gorm.DB) *ChartRepository {
	return &ChartRepository{db: db}
}

func (c *ChartRepository) Create(chart *models.Chart) error {
	return c.db.Create(chart).Error
}

func (c *ChartRepository) GetByID(id uint) (*models.Chart, error) {
	var chart models.Chart
	err := c.db.First(&chart, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, weberrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

func (c *ChartRepository) ListByUploadAndOwner(uploadID uint, ownerID uint) ([]models.Chart, error) {
	var charts []models.Chart
	err := c.db.
		Where("upload_id = ? AND account_id = ?", uploadID, ownerID).
		Order("created_at desc").
		Find(&charts).Error
	return charts, err
}

// DeleteOwned deletes the chart only when it belongs to ownerID, so a
// missing row and a foreign row are indistinguishable to the caller.
func (c *ChartRepository) DeleteOwned(id uint, ownerID uint) error {
	res := c.db.Where("id = ? AND account_id = ?", id, ownerID).Delete(&models.Chart{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return weberrors.ErrNotFound
	}
	return nil
}
