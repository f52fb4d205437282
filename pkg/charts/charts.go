// Package charts persists chart configurations rendered client-side.
package charts

import (
	"fmt"

	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/excelytics/excelytics/pkg/weberrors"
)

type Service struct {
	charts repositories.IChartRepository
}

func NewService(charts repositories.IChartRepository) *Service {
	return &Service{charts: charts}
}

// Save stores a new chart for the owner. The image arrives as a base64
// encoded bitmap produced by the charting library.
func (s *Service) Save(ownerID uint, chart *models.Chart) (*models.Chart, error) {
	if chart.UploadID == 0 || chart.ChartType == "" || chart.XAxis == "" || chart.YAxis == "" || chart.Image == "" {
		return nil, fmt.Errorf("%w: missing required fields", weberrors.ErrValidation)
	}

	chart.AccountID = ownerID
	if err := s.charts.Create(chart); err != nil {
		return nil, err
	}

	return chart, nil
}

// ListByFile returns the caller's charts for one upload, newest first.
func (s *Service) ListByFile(ownerID uint, uploadID uint) ([]models.Chart, error) {
	return s.charts.ListByUploadAndOwner(uploadID, ownerID)
}

// Get returns a single chart; only the owner may view it.
func (s *Service) Get(ownerID uint, id uint) (*models.Chart, error) {
	chart, err := s.charts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chart.AccountID != ownerID {
		return nil, fmt.Errorf("%w: not the chart owner", weberrors.ErrForbidden)
	}
	return chart, nil
}

// Delete removes the chart through an owner-scoped lookup, so someone
// else's chart id reads as absent.
func (s *Service) Delete(ownerID uint, id uint) error {
	return s.charts.DeleteOwned(id, ownerID)
}
