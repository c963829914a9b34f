package domain

import "time"

type Settings struct {
	MaintenanceMode bool      `json:"maintenance_mode"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SubscriptionProduct struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PriceMonthly float64   `json:"price_monthly"`
	PriceYearly  float64   `json:"price_yearly"`
	HasTrial     bool      `json:"has_trial"`
	TrialDays    int       `json:"trial_days"`
	Features     []string  `json:"features"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateProductRequest struct {
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"price_monthly"`
	PriceYearly  float64  `json:"price_yearly"`
	HasTrial     bool     `json:"has_trial"`
	TrialDays    int      `json:"trial_days"`
	Features     []string `json:"features"`
}
