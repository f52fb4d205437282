// Package admissions governs an administrator signup request from creation
// until it is approved, rejected, or expired. The waiting window is a
// wall-clock bound; expiry is applied lazily whenever the pending list is
// read, never by a background timer.
package admissions

import (
	"fmt"
	"strings"
	"time"

	"github.com/excelytics/excelytics/pkg/auth"
	"github.com/excelytics/excelytics/pkg/crypto"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/sirupsen/logrus"
)

// Notifier is the capability handed to the workflow for reaching a
// requester's private room. Nothing else here can publish.
type Notifier interface {
	AdmissionApproved(accountID uint, message string)
	AdmissionRejected(accountID uint, message string)
}

type Service struct {
	accounts repositories.IAccountRepository
	notifier Notifier
	tokens   *auth.Issuer
	window   time.Duration
}

func NewService(accounts repositories.IAccountRepository, notifier Notifier, tokens *auth.Issuer, window time.Duration) *Service {
	return &Service{
		accounts: accounts,
		notifier: notifier,
		tokens:   tokens,
		window:   window,
	}
}

// Window is the fixed time a pending admin has before it expires.
func (s *Service) Window() time.Duration {
	return s.window
}

// ExpiresAt anchors the expiry to the account's creation time.
func (s *Service) ExpiresAt(account *models.Account) time.Time {
	return account.CreatedAt.Add(s.window)
}

// RequestAdmission creates an unapproved admin account and returns a token
// scoped to it, so the requester can poll its own status while waiting.
func (s *Service) RequestAdmission(name, email, password string) (*models.Account, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", weberrors.ErrValidation
	}
	email = strings.ToLower(email)

	exists, err := s.accounts.EmailExists(email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", weberrors.ErrDuplicateAccount
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	account := &models.Account{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
		Approved: false,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return nil, "", err
	}

	logrus.Infof("Admin signup pending approval: %s", email)
	return account, token, nil
}

// ListPending sweeps out requests older than the window, then returns the
// survivors oldest first.
func (s *Service) ListPending() ([]models.Account, error) {
	cutoff := time.Now().Add(-s.window)
	if err := s.accounts.DeleteExpiredPendingAdmins(cutoff); err != nil {
		return nil, err
	}

	return s.accounts.ListPendingAdmins()
}

// Approve marks a pending admin approved and notifies the requester. An id
// that no longer resolves to a pending request reports NotFound, so a
// terminal state is never re-entered.
func (s *Service) Approve(id uint) (*models.Account, error) {
	account, err := s.pending(id)
	if err != nil {
		return nil, err
	}

	account.Approved = true
	if err := s.accounts.Update(account); err != nil {
		return nil, err
	}

	s.notifier.AdmissionApproved(account.ID, "Your request has been approved")
	return account, nil
}

// Reject notifies the requester, then deletes the account entirely.
func (s *Service) Reject(id uint) error {
	account, err := s.pending(id)
	if err != nil {
		return err
	}

	s.notifier.AdmissionRejected(account.ID, "Your request has been rejected")
	return s.accounts.Delete(account.ID)
}

// SelfExpire deletes the request when the requester's own countdown runs
// out. Only an unapproved admin qualifies.
func (s *Service) SelfExpire(id uint) error {
	account, err := s.pending(id)
	if err != nil {
		return err
	}

	logrus.Infof("Pending admin %d removed on timeout", account.ID)
	return s.accounts.Delete(account.ID)
}

func (s *Service) pending(id uint) (*models.Account, error) {
	account, err := s.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !account.Role.Is(models.RoleAdmin) || account.Approved {
		return nil, fmt.Errorf("%w: pending admin", weberrors.ErrNotFound)
	}
	return account, nil
}
