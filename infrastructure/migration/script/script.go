package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/pointnow/admin-bff/infrastructure/database/postgres"
	"github.com/pointnow/admin-bff/internal/config"
	"github.com/pointnow/admin-bff/pkg/utils"
	"github.com/sirupsen/logrus"
)

const productIDPrefix = "prod_"

type Product struct {
	Name         string
	PriceMonthly float64
	PriceYearly  float64
	HasTrial     bool
	TrialDays    int
	Features     []string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		id               INTEGER PRIMARY KEY,
		maintenance_mode BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS subscription_products (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL UNIQUE,
		price_monthly NUMERIC(10, 2) NOT NULL DEFAULT 0,
		price_yearly  NUMERIC(10, 2) NOT NULL DEFAULT 0,
		has_trial     BOOLEAN NOT NULL DEFAULT FALSE,
		trial_days    INTEGER NOT NULL DEFAULT 0,
		features      TEXT[] NOT NULL DEFAULT '{}',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`INSERT INTO settings (id, maintenance_mode) VALUES (1, FALSE) ON CONFLICT (id) DO NOTHING`,
}

var catalog = []Product{
	{
		Name:         "Starter",
		PriceMonthly: 29,
		PriceYearly:  290,
		HasTrial:     true,
		TrialDays:    14,
		Features:     []string{"1 branch", "Up to 500 customers", "Loyalty points"},
	},
	{
		Name:         "Premium",
		PriceMonthly: 79,
		PriceYearly:  790,
		HasTrial:     true,
		TrialDays:    14,
		Features:     []string{"Up to 5 branches", "Unlimited customers", "Customer leaderboard", "Email campaigns"},
	},
	{
		Name:         "Enterprise",
		PriceMonthly: 199,
		PriceYearly:  1990,
		Features:     []string{"Unlimited branches", "Dedicated support", "Custom integrations"},
	},
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("starting settings migration")
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []Product) error {
	logrus.Infof("seeding %d subscription products", len(products))
	startTime := time.Now()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO subscription_products
		(id, name, price_monthly, price_yearly, has_trial, trial_days, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	inserted := 0
	for _, p := range products {
		id, err := utils.GenerateID(productIDPrefix)
		if err != nil {
			return err
		}

		result, err := stmt.ExecContext(ctx, id, p.Name, p.PriceMonthly, p.PriceYearly, p.HasTrial, p.TrialDays, pq.Array(p.Features))
		if err != nil {
			return err
		}

		if n, _ := result.RowsAffected(); n > 0 {
			inserted++
		}
	}

	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"skipped":  len(products) - inserted,
		"elapsed":  time.Since(startTime).String(),
	}).Info("subscription products seeded")

	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("failed to connect to the database: %v", err)
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		return insertProducts(ctx, tx, catalog)
	})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	logrus.Info("migration finished")
}
