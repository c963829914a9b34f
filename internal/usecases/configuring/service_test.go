package configuring

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/repository/mocks"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockSettingsRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)

	service := NewService(repo).(*Service)
	service.generateID = func(prefix string) (string, error) {
		return prefix + "fixed", nil
	}

	return service, repo
}

func TestService_SetMaintenanceMode(t *testing.T) {
	service, repo := newTestService(t)
	updatedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().
		SetMaintenanceMode(gomock.Any(), true).
		Return(&domain.Settings{MaintenanceMode: true, UpdatedAt: updatedAt}, nil)

	settings, err := service.SetMaintenanceMode(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, settings.MaintenanceMode)
	assert.Equal(t, updatedAt, settings.UpdatedAt)
}

func TestService_GetSettings_StorageFailure(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().GetSettings(gomock.Any()).Return(nil, errors.New("connection refused"))

	settings, err := service.GetSettings(context.Background())
	assert.Nil(t, settings)

	settingsErr, ok := IsSettingsError(err)
	require.True(t, ok)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, settingsErr.Code)
	assert.ErrorIs(t, err, ErrFetchSettings)
}

func TestService_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		request  domain.CreateProductRequest
		setup    func(repo *mocks.MockSettingsRepository)
		wantErr  error
		wantCode string
		wantID   string
	}{
		{
			name:     "blank name",
			request:  domain.CreateProductRequest{Name: "   ", PriceMonthly: 10},
			setup:    func(*mocks.MockSettingsRepository) {},
			wantErr:  ErrProductNameRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "negative price",
			request:  domain.CreateProductRequest{Name: "Starter", PriceYearly: -1},
			setup:    func(*mocks.MockSettingsRepository) {},
			wantErr:  ErrNegativePrice,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "negative trial",
			request:  domain.CreateProductRequest{Name: "Starter", HasTrial: true, TrialDays: -3},
			setup:    func(*mocks.MockSettingsRepository) {},
			wantErr:  ErrNegativeTrialDays,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name: "stores a normalized product",
			request: domain.CreateProductRequest{
				Name:         " Growth ",
				PriceMonthly: 19.499,
				PriceYearly:  190,
				TrialDays:    7,
				Features:     []string{"Rewards"},
			},
			setup: func(repo *mocks.MockSettingsRepository) {
				repo.EXPECT().
					CreateProduct(gomock.Any(), domain.SubscriptionProduct{
						ID:           "prod_fixed",
						Name:         "Growth",
						PriceMonthly: 19.5,
						PriceYearly:  190,
						Features:     []string{"Rewards"},
					}).
					DoAndReturn(func(_ context.Context, p domain.SubscriptionProduct) (*domain.SubscriptionProduct, error) {
						return &p, nil
					})
			},
			wantID: "prod_fixed",
		},
		{
			name:    "storage failure",
			request: domain.CreateProductRequest{Name: "Growth"},
			setup: func(repo *mocks.MockSettingsRepository) {
				repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			wantErr:  ErrCreateProduct,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			product, err := service.CreateProduct(context.Background(), tt.request)
			if tt.wantErr != nil {
				assert.Nil(t, product)
				assert.ErrorIs(t, err, tt.wantErr)

				settingsErr, ok := IsSettingsError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, settingsErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, product.ID)
		})
	}
}
