// Package accounts covers signup, login, and the user-management
// operations available to the admin tiers.
package accounts

import (
	"fmt"
	"strings"

	"github.com/excelytics/excelytics/pkg/auth"
	"github.com/excelytics/excelytics/pkg/crypto"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/repositories"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	accounts repositories.IAccountRepository
	tokens   *auth.Issuer
}

func NewService(accounts repositories.IAccountRepository, tokens *auth.Issuer) *Service {
	return &Service{accounts: accounts, tokens: tokens}
}

// Signup creates a user or super-admin account, approved immediately, and
// returns a token for it. Admin signups go through the admission workflow
// instead.
func (s *Service) Signup(name, email, password string, role models.Role) (*models.Account, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", weberrors.ErrValidation
	}
	if !role.Is(models.RoleUser) && !role.Is(models.RoleSuperAdmin) {
		return nil, "", fmt.Errorf("%w: invalid role", weberrors.ErrValidation)
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
		Role:     role,
		Approved: true,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// Login checks credentials and issues a token. The email lookup is
// case-insensitive because addresses are stored lowercased.
func (s *Service) Login(email, password string) (*models.Account, string, error) {
	account, err := s.accounts.GetByEmail(strings.ToLower(email))
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", weberrors.ErrUnauthenticated)
	}

	if !crypto.CheckPassword(password, account.Password) {
		return nil, "", fmt.Errorf("%w: invalid credentials", weberrors.ErrUnauthenticated)
	}

	token, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (s *Service) GetByID(id uint) (*models.Account, error) {
	return s.accounts.GetByID(id)
}

// DeleteSelf removes the caller's own account.
func (s *Service) DeleteSelf(id uint) error {
	if _, err := s.accounts.GetByID(id); err != nil {
		return err
	}
	return s.accounts.Delete(id)
}

// CreateAccount is the admin-tier creation path. Admins may create users
// only; super-admins may also create (unapproved) admins; nobody creates
// another super-admin.
func (s *Service) CreateAccount(creator *models.Account, name, email, password string, role models.Role) (*models.Account, error) {
	if name == "" || email == "" || password == "" || role == "" {
		return nil, weberrors.ErrValidation
	}
	if role.Is(models.RoleSuperAdmin) {
		return nil, fmt.Errorf("%w: cannot create another super-admin", weberrors.ErrForbidden)
	}
	if creator.Role.Is(models.RoleAdmin) && role.Is(models.RoleAdmin) {
		return nil, fmt.Errorf("%w: admins cannot create other admins", weberrors.ErrForbidden)
	}

	email = strings.ToLower(email)
	exists, err := s.accounts.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, weberrors.ErrDuplicateAccount
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
		Approved: !role.Is(models.RoleAdmin),
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	logrus.Infof("%s account created by %s", role, creator.Email)
	return account, nil
}

// CreateApprovedAdmin is the super-admin shortcut that skips the admission
// window entirely.
func (s *Service) CreateApprovedAdmin(name, email, password string) (*models.Account, error) {
	if name == "" || email == "" || password == "" {
		return nil, weberrors.ErrValidation
	}

	email = strings.ToLower(email)
	exists, err := s.accounts.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, weberrors.ErrDuplicateAccount
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
		Approved: true,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListUsers returns ordinary user accounts only.
func (s *Service) ListUsers() ([]models.Account, error) {
	return s.accounts.ListByRole(models.RoleUser)
}

// ListUsersAndAdmins returns everything below the super-admin tier.
func (s *Service) ListUsersAndAdmins() ([]models.Account, error) {
	return s.accounts.ListUsersAndAdmins()
}

// DeleteAccount removes a user or admin. A super-admin can never be
// destroyed by another party.
func (s *Service) DeleteAccount(id uint) error {
	account, err := s.accounts.GetByID(id)
	if err != nil {
		return err
	}
	if account.Role.Is(models.RoleSuperAdmin) {
		return fmt.Errorf("%w: cannot delete super-admins", weberrors.ErrForbidden)
	}

	return s.accounts.Delete(id)
}
