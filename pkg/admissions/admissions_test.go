package admissions

import (
	"sort"
	"testing"
	"time"

	"github.com/excelytics/excelytics/pkg/auth"
	"github.com/excelytics/excelytics/pkg/models"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type memAccounts struct {
	seq  uint
	byID map[uint]*models.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: map[uint]*models.Account{}}
}

func (m *memAccounts) Create(a *models.Account) error {
	m.seq++
	a.ID = m.seq
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	clone := *a
	m.byID[a.ID] = &clone
	return nil
}

func (m *memAccounts) GetByID(id uint) (*models.Account, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, weberrors.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (m *memAccounts) GetByEmail(email string) (*models.Account, error) {
	for _, a := range m.byID {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, weberrors.ErrNotFound
}

func (m *memAccounts) EmailExists(email string) (bool, error) {
	_, err := m.GetByEmail(email)
	return err == nil, nil
}

func (m *memAccounts) Update(a *models.Account) error {
	if _, ok := m.byID[a.ID]; !ok {
		return weberrors.ErrNotFound
	}
	clone := *a
	m.byID[a.ID] = &clone
	return nil
}

func (m *memAccounts) Delete(id uint) error {
	delete(m.byID, id)
	return nil
}

func (m *memAccounts) ListByRole(role models.Role) ([]models.Account, error) {
	var out []models.Account
	for _, a := range m.byID {
		if a.Role == role {
			out = append(out, *a)
		}
	}
	sortByCreatedAsc(out)
	return out, nil
}

func (m *memAccounts) ListUsersAndAdmins() ([]models.Account, error) {
	var out []models.Account
	for _, a := range m.byID {
		if a.Role != models.RoleSuperAdmin {
			out = append(out, *a)
		}
	}
	sortByCreatedAsc(out)
	return out, nil
}

func (m *memAccounts) ListPendingAdmins() ([]models.Account, error) {
	var out []models.Account
	for _, a := range m.byID {
		if a.Role == models.RoleAdmin && !a.Approved {
			out = append(out, *a)
		}
	}
	sortByCreatedAsc(out)
	return out, nil
}

func (m *memAccounts) DeleteExpiredPendingAdmins(cutoff time.Time) error {
	for id, a := range m.byID {
		if a.Role == models.RoleAdmin && !a.Approved && a.CreatedAt.Before(cutoff) {
			delete(m.byID, id)
		}
	}
	return nil
}

func sortByCreatedAsc(accounts []models.Account) {
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
}

type fakeNotifier struct {
	approved []uint
	rejected []uint
}

func (f *fakeNotifier) AdmissionApproved(accountID uint, message string) {
	f.approved = append(f.approved, accountID)
}

func (f *fakeNotifier) AdmissionRejected(accountID uint, message string) {
	f.rejected = append(f.rejected, accountID)
}

func newService(window time.Duration) (*Service, *memAccounts, *fakeNotifier) {
	repo := newMemAccounts()
	notifier := &fakeNotifier{}
	tokens := auth.NewIssuer([]byte("test-secret"), time.Hour)
	return NewService(repo, notifier, tokens, window), repo, notifier
}

// --- tests ---

func TestRequestAdmission(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newService(time.Minute)

	account, token, err := svc.RequestAdmission("A", "A@X.com", "p")
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.False(t, account.Approved)
	assert.Equal(t, "a@x.com", account.Email)
	assert.NotEmpty(t, token)

	stored, err := repo.GetByID(account.ID)
	require.NoError(t, err)
	assert.False(t, stored.Approved)
	assert.NotEqual(t, "p", stored.Password)
}

func TestRequestAdmission_TokenResolvesToRequester(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(time.Minute)
	account, token, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)

	claims, err := auth.NewIssuer([]byte("test-secret"), time.Hour).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestRequestAdmission_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newService(time.Minute)
	require.NoError(t, repo.Create(&models.Account{Email: "a@x.com", Role: models.RoleUser, Approved: true}))

	_, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	assert.ErrorIs(t, err, weberrors.ErrDuplicateAccount)
}

func TestRequestAdmission_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(time.Minute)
	_, _, err := svc.RequestAdmission("A", "", "p")
	assert.ErrorIs(t, err, weberrors.ErrValidation)
}

func TestListPending_SweepsExpired(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newService(time.Minute)

	fresh, _, err := svc.RequestAdmission("Fresh", "fresh@x.com", "p")
	require.NoError(t, err)

	stale, _, err := svc.RequestAdmission("Stale", "stale@x.com", "p")
	require.NoError(t, err)
	repo.byID[stale.ID].CreatedAt = time.Now().Add(-2 * time.Minute)

	pending, err := svc.ListPending()
	require.NoError(t, err)

	require.Len(t, pending, 1)
	assert.Equal(t, fresh.ID, pending[0].ID)

	_, err = repo.GetByID(stale.ID)
	assert.ErrorIs(t, err, weberrors.ErrNotFound)
}

func TestListPending_OldestFirst(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newService(time.Hour)

	second, _, err := svc.RequestAdmission("B", "b@x.com", "p")
	require.NoError(t, err)
	first, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)

	repo.byID[first.ID].CreatedAt = time.Now().Add(-10 * time.Minute)

	pending, err := svc.ListPending()
	require.NoError(t, err)

	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)
}

func TestListPending_SkipsApprovedRegardlessOfAge(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newService(time.Minute)

	admin, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)
	repo.byID[admin.ID].CreatedAt = time.Now().Add(-2 * time.Minute)
	repo.byID[admin.ID].Approved = true

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	// approved row survived the sweep
	_, err = repo.GetByID(admin.ID)
	assert.NoError(t, err)
}

func TestApprove(t *testing.T) {
	t.Parallel()

	svc, repo, notifier := newService(time.Minute)

	admin, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)

	approved, err := svc.Approve(admin.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	stored, err := repo.GetByID(admin.ID)
	require.NoError(t, err)
	assert.True(t, stored.Approved)

	assert.Equal(t, []uint{admin.ID}, notifier.approved)
}

func TestApprove_MissingOrNotPending(t *testing.T) {
	t.Parallel()

	svc, repo, notifier := newService(time.Minute)

	_, err := svc.Approve(999)
	assert.ErrorIs(t, err, weberrors.ErrNotFound)

	admin, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)
	_, err = svc.Approve(admin.ID)
	require.NoError(t, err)

	// already terminal: a second approval is NotFound, not a silent re-save
	_, err = svc.Approve(admin.ID)
	assert.ErrorIs(t, err, weberrors.ErrNotFound)

	user := &models.Account{Email: "u@x.com", Role: models.RoleUser, Approved: true}
	require.NoError(t, repo.Create(user))
	_, err = svc.Approve(user.ID)
	assert.ErrorIs(t, err, weberrors.ErrNotFound)

	assert.Len(t, notifier.approved, 1)
}

func TestReject(t *testing.T) {
	t.Parallel()

	svc, repo, notifier := newService(time.Minute)

	admin, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)

	require.NoError(t, svc.Reject(admin.ID))

	_, err = repo.GetByID(admin.ID)
	assert.ErrorIs(t, err, weberrors.ErrNotFound)
	assert.Equal(t, []uint{admin.ID}, notifier.rejected)

	// losing side of the race sees NotFound
	assert.ErrorIs(t, svc.Reject(admin.ID), weberrors.ErrNotFound)
}

func TestSelfExpire(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newService(time.Minute)

	admin, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)

	require.NoError(t, svc.SelfExpire(admin.ID))
	_, err = repo.GetByID(admin.ID)
	assert.ErrorIs(t, err, weberrors.ErrNotFound)
}

func TestSelfExpire_ApprovedAdminIneligible(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(time.Minute)

	admin, _, err := svc.RequestAdmission("A", "a@x.com", "p")
	require.NoError(t, err)
	_, err = svc.Approve(admin.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SelfExpire(admin.ID), weberrors.ErrNotFound)
}

func TestExpiresAt(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(time.Minute)

	account := &models.Account{}
	account.CreatedAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 1, 0, 0, time.UTC), svc.ExpiresAt(account))
}
