package repositories

import (
	"errors"
	"time"

	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"gorm.io/gorm"
)

type IAccountRepository interface {
	Create(account *models.Account) error
	GetByID(id uint) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	EmailExists(email string) (bool, error)
	Update(account *models.Account) error
	Delete(id uint) error
	ListByRole(role models.Role) ([]models.Account, error)
	ListUsersAndAdmins() ([]models.Account, error)
	ListPendingAdmins() ([]models.Account, error)
	DeleteExpiredPendingAdmins(cutoff time.Time) error
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (a *AccountRepository) Create(account *models.Account) error {
	return a.db.Create(account).Error
}

func (a *AccountRepository) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	err := a.db.First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, weberrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *AccountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := a.db.Where(&models.Account{Email: email}).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, weberrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *AccountRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := a.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (a *AccountRepository) Update(account *models.Account) error {
	return a.db.Save(account).Error
}

// Delete removes the row outright. A soft delete would keep the email
// covered by the unique index, so a rejected or expired admin could never
// sign up again with the same address.
func (a *AccountRepository) Delete(id uint) error {
	return a.db.Unscoped().Delete(&models.Account{}, id).Error
}

func (a *AccountRepository) ListByRole(role models.Role) ([]models.Account, error) {
	var accounts []models.Account
	err := a.db.Where("role = ?", role).Order("created_at asc").Find(&accounts).Error
	return accounts, err
}

func (a *AccountRepository) ListUsersAndAdmins() ([]models.Account, error) {
	var accounts []models.Account
	err := a.db.Where("role <> ?", models.RoleSuperAdmin).Order("created_at asc").Find(&accounts).Error
	return accounts, err
}

func (a *AccountRepository) ListPendingAdmins() ([]models.Account, error) {
	var accounts []models.Account
	err := a.db.
		Where("role = ? AND approved = ?", models.RoleAdmin, false).
		Order("created_at asc").
		Find(&accounts).Error
	return accounts, err
}

// DeleteExpiredPendingAdmins removes unapproved admin signups older than
// cutoff. Approved rows are never matched, so a racing approval wins.
// Unscoped for the same reason as Delete: the email must become free again.
func (a *AccountRepository) DeleteExpiredPendingAdmins(cutoff time.Time) error {
	return a.db.Unscoped().
		Where("role = ? AND approved = ? AND created_at < ?", models.RoleAdmin, false, cutoff).
		Delete(&models.Account{}).Error
}
