package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/database/postgres"
	"github.com/pointnow/admin-bff/internal/domain"
)

//go:generate mockgen -source=settings.go -destination=mocks/settings_mock.go -package=mocks

const (
	settingsTable = "settings"
	productsTable = "subscription_products"

	// settingsRowID is the id of the single settings row
	settingsRowID = 1
)

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SetMaintenanceMode(ctx context.Context, enabled bool) (*domain.Settings, error)
	ListProducts(ctx context.Context) ([]domain.SubscriptionProduct, error)
	CreateProduct(ctx context.Context, product domain.SubscriptionProduct) (*domain.SubscriptionProduct, error)
}

type settingsRepository struct {
	conn postgres.Queryer
}

func NewSettingsRepository(conn postgres.Queryer) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// GetSettings returns the stored settings, or the defaults when the row was never written
func (r *settingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query, args, err := squirrel.
		Select("maintenance_mode", "updated_at").
		From(settingsTable).
		Where(squirrel.Eq{"id": settingsRowID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "settings: build select")
	}

	settings := &domain.Settings{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&settings.MaintenanceMode, &settings.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Settings{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "settings: select")
	}

	return settings, nil
}

func (r *settingsRepository) SetMaintenanceMode(ctx context.Context, enabled bool) (*domain.Settings, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(settingsTable).
		Columns("id", "maintenance_mode", "updated_at").
		Values(settingsRowID, enabled, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
				maintenance_mode = EXCLUDED.maintenance_mode,
				updated_at = EXCLUDED.updated_at
			RETURNING maintenance_mode, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "settings: build upsert")
	}

	settings := &domain.Settings{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&settings.MaintenanceMode, &settings.UpdatedAt); err != nil {
		return nil, wrapPQ(err, "settings: upsert")
	}

	return settings, nil
}

func (r *settingsRepository) ListProducts(ctx context.Context) ([]domain.SubscriptionProduct, error) {
	query, args, err := squirrel.
		Select("id", "name", "price_monthly", "price_yearly", "has_trial", "trial_days", "features", "created_at").
		From(productsTable).
		OrderBy("price_monthly ASC", "name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "products: build select")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "products: select")
	}
	defer rows.Close()

	products := make([]domain.SubscriptionProduct, 0)
	for rows.Next() {
		var p domain.SubscriptionProduct
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.PriceMonthly,
			&p.PriceYearly,
			&p.HasTrial,
			&p.TrialDays,
			pq.Array(&p.Features),
			&p.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "products: scan")
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "products: iterate")
	}

	return products, nil
}

func (r *settingsRepository) CreateProduct(ctx context.Context, product domain.SubscriptionProduct) (*domain.SubscriptionProduct, error) {
	features := product.Features
	if features == nil {
		features = []string{}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(productsTable).
		Columns("id", "name", "price_monthly", "price_yearly", "has_trial", "trial_days", "features").
		Values(
			product.ID,
			product.Name,
			product.PriceMonthly,
			product.PriceYearly,
			product.HasTrial,
			product.TrialDays,
			pq.Array(features),
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "products: build insert")
	}

	var createdAt time.Time
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, wrapPQ(err, "products: insert")
	}

	product.Features = features
	product.CreatedAt = createdAt

	return &product, nil
}

func wrapPQ(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errors.Wrapf(err, "%s (code: %s)", msg, pqErr.Code)
	}
	return errors.Wrap(err, msg)
}
