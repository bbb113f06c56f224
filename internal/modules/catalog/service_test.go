package catalog

import (
	"context"
	"testing"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Create(ctx context.Context, p *domain.TourPackage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id int64) (*domain.TourPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourPackage), args.Error(1)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *domain.TourPackage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) List(ctx context.Context, filter repository.PackageFilter, limit, offset int) ([]domain.TourPackage, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.TourPackage), args.Get(1).(int64), args.Error(2)
}

func (m *MockPackageRepository) CreateDeparture(ctx context.Context, d *domain.Departure) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockPackageRepository) GetDeparture(ctx context.Context, id int64) (*domain.Departure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Departure), args.Error(1)
}

func (m *MockPackageRepository) UpdateDeparture(ctx context.Context, d *domain.Departure) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) Get(ctx context.Context) (*domain.SystemSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemSettings), args.Error(1)
}

var (
	operator = Actor{UserID: 10, Role: domain.RoleTourOperator}
	admin    = Actor{UserID: 1, Role: domain.RoleAdmin}
)

func TestService_Create_StartsAsDraft(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(MockSettingsReader))
	p, err := service.Create(context.Background(), operator, CreatePackageRequest{
		Title:        "Inca Trail",
		Destination:  "Cusco",
		DurationDays: 4,
		BasePrice:    1000,
		Type:         domain.PackageGroup,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PackageDraft, p.Status)
	assert.Equal(t, int64(10), p.OperatorID)
}

func TestService_Update_OtherOperatorForbidden(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TourPackage{
		ID:         5,
		OperatorID: 99,
		Status:     domain.PackageDraft,
	}, nil)

	title := "New title"
	service := NewService(repo, new(MockSettingsReader))
	_, err := service.Update(context.Background(), operator, 5, UpdatePackageRequest{Title: &title})

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Update")
}

func TestService_Update_AdminBypassesOwnership(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TourPackage{
		ID:         5,
		OperatorID: 99,
		Status:     domain.PackageDraft,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	title := "New title"
	service := NewService(repo, new(MockSettingsReader))
	p, err := service.Update(context.Background(), admin, 5, UpdatePackageRequest{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "New title", p.Title)
}

func TestService_Publish(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TourPackage{
		ID:         5,
		OperatorID: 10,
		Status:     domain.PackageDraft,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(MockSettingsReader))
	p, err := service.Publish(context.Background(), operator, 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.PackagePublished, p.Status)
}

func TestService_Publish_AlreadyPublished(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TourPackage{
		ID:         5,
		OperatorID: 10,
		Status:     domain.PackagePublished,
	}, nil)

	service := NewService(repo, new(MockSettingsReader))
	_, err := service.Publish(context.Background(), operator, 5)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Delete_PublishedRejected(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TourPackage{
		ID:         5,
		OperatorID: 10,
		Status:     domain.PackagePublished,
	}, nil)

	service := NewService(repo, new(MockSettingsReader))
	err := service.Delete(context.Background(), operator, 5)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	repo.AssertNotCalled(t, "Delete")
}

func TestService_List_OperatorScopedToOwnCatalog(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f repository.PackageFilter) bool {
		return f.OperatorID != nil && *f.OperatorID == 10
	}), 20, 0).Return([]domain.TourPackage{}, int64(0), nil)

	other := int64(99)
	service := NewService(repo, new(MockSettingsReader))
	_, _, err := service.List(context.Background(), operator, ListPackagesQuery{OperatorID: &other})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_AddDeparture_PrivatePackageRejected(t *testing.T) {
	repo := new(MockPackageRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TourPackage{
		ID:         5,
		OperatorID: 10,
		Type:       domain.PackagePrivate,
	}, nil)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	service := NewService(repo, new(MockSettingsReader))
	_, err := service.AddDeparture(context.Background(), operator, 5, CreateDepartureRequest{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
		Capacity:  20,
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "CreateDeparture")
}

func TestService_PreviewPrice_AllDiscountsCompound(t *testing.T) {
	repo := new(MockPackageRepository)
	settings := new(MockSettingsReader)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetDeparture", mock.Anything, int64(3)).Return(&domain.Departure{
		ID:        3,
		PackageID: 5,
		StartDate: now.AddDate(0, 0, 70),
		Season:    domain.SeasonPeak,
	}, nil)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TourPackage{
		ID:        5,
		BasePrice: 1000,
		Type:      domain.PackageGroup,
	}, nil)
	settings.On("Get", mock.Anything).Return(&domain.SystemSettings{
		CommissionRules: domain.DefaultCommissionRules(),
	}, nil)

	service := NewService(repo, settings)
	service.now = func() time.Time { return now }

	preview, err := service.PreviewPrice(context.Background(), PricePreviewRequest{
		DepartureID: 3,
		PartySize:   12,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1053.0, preview.PerPerson.FinalPrice)
	assert.True(t, preview.PerPerson.EarlyBirdApplied)
	assert.Equal(t, 10.0, preview.PerPerson.GroupDiscount)
	assert.Equal(t, 12636.0, preview.Total)
}
