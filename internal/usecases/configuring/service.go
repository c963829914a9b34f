package configuring

import (
	"context"
	"strings"

	"github.com/pointnow/admin-bff/infrastructure/repository"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/log"
	"github.com/pointnow/admin-bff/pkg/utils"
)

const ProductIDPrefix = "prod_"

type SettingsService interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SetMaintenanceMode(ctx context.Context, enabled bool) (*domain.Settings, error)
	ListProducts(ctx context.Context) ([]domain.SubscriptionProduct, error)
	CreateProduct(ctx context.Context, request domain.CreateProductRequest) (*domain.SubscriptionProduct, error)
}

type Service struct {
	repository repository.SettingsRepository
	generateID func(prefix string) (string, error)
}

func NewService(settingsRepository repository.SettingsRepository) SettingsService {
	return &Service{
		repository: settingsRepository,
		generateID: utils.GenerateID,
	}
}

func (s *Service) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repository.GetSettings(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("settings: failed to load settings")
		return nil, NewSettingsError(ErrFetchSettings, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return settings, nil
}

func (s *Service) SetMaintenanceMode(ctx context.Context, enabled bool) (*domain.Settings, error) {
	settings, err := s.repository.SetMaintenanceMode(ctx, enabled)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("settings: failed to save maintenance mode")
		return nil, NewSettingsError(ErrSaveSettings, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("maintenance_mode", enabled).Info("settings: maintenance mode updated")

	return settings, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.SubscriptionProduct, error) {
	products, err := s.repository.ListProducts(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("settings: failed to list products")
		return nil, NewSettingsError(ErrFetchProducts, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return products, nil
}

func (s *Service) CreateProduct(ctx context.Context, request domain.CreateProductRequest) (*domain.SubscriptionProduct, error) {
	name := strings.TrimSpace(request.Name)
	switch {
	case name == "":
		return nil, NewSettingsError(ErrProductNameRequired, apiErrors.ErrMissingRequiredData, "")
	case request.PriceMonthly < 0 || request.PriceYearly < 0:
		return nil, NewSettingsError(ErrNegativePrice, apiErrors.ErrInvalidFormat, "")
	case request.TrialDays < 0:
		return nil, NewSettingsError(ErrNegativeTrialDays, apiErrors.ErrInvalidFormat, "")
	}

	id, err := s.generateID(ProductIDPrefix)
	if err != nil {
		return nil, NewSettingsError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	trialDays := request.TrialDays
	if !request.HasTrial {
		trialDays = 0
	}

	product, err := s.repository.CreateProduct(ctx, domain.SubscriptionProduct{
		ID:           id,
		Name:         name,
		PriceMonthly: utils.RoundWithTwoDecimalPlace(request.PriceMonthly),
		PriceYearly:  utils.RoundWithTwoDecimalPlace(request.PriceYearly),
		HasTrial:     request.HasTrial,
		TrialDays:    trialDays,
		Features:     request.Features,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("settings: failed to create product")
		return nil, NewSettingsError(ErrCreateProduct, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return product, nil
}
