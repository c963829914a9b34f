package viewing

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/internal/usecases/listing"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/utils"
	"github.com/stripe/stripe-go/v72"
)

// Section is one independently fetched part of a view: either data or an error
type Section[T any] struct {
	Data       *T     `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (s Section[T]) OK() bool {
	return s.Error == ""
}

func settle[T any](data *T, err error, fallback string) Section[T] {
	if err == nil {
		return Section[T]{Data: data}
	}

	var upstreamErr *pointnow.UpstreamError
	if errors.As(err, &upstreamErr) {
		return Section[T]{Error: upstreamErr.MessageOr(fallback), StatusCode: upstreamErr.StatusCode}
	}

	return Section[T]{Error: apiErrors.MsgInternalServerError, StatusCode: http.StatusInternalServerError}
}

type BusinessRow struct {
	Business           domain.Business           `json:"business"`
	SubscriptionStatus domain.SubscriptionStatus `json:"subscription_status"`
	IsActive           bool                      `json:"is_active"`
}

func newBusinessRow(b domain.Business) BusinessRow {
	return BusinessRow{
		Business:           b,
		SubscriptionStatus: b.SubscriptionStatus(),
		IsActive:           b.IsActive(),
	}
}

type BusinessListView struct {
	Rows       []BusinessRow                   `json:"rows"`
	Metadata   domain.PageMetadata             `json:"metadata"`
	Showing    string                          `json:"showing"`
	Pagination listing.Controls                `json:"pagination"`
	Metrics    Section[domain.BusinessMetrics] `json:"metrics"`
}

type BusinessDetailView struct {
	BusinessRow
	Leaderboard Section[domain.LeaderboardPage] `json:"leaderboard"`
}

type CustomerListView struct {
	Rows       []domain.Customer               `json:"rows"`
	Metadata   domain.PageMetadata             `json:"metadata"`
	Showing    string                          `json:"showing"`
	Pagination listing.Controls                `json:"pagination"`
	Metrics    Section[domain.CustomerMetrics] `json:"metrics"`
}

type CustomerDetailView struct {
	Customer      domain.Customer               `json:"customer"`
	PointsHistory Section[domain.PointsHistory] `json:"points_history"`
}

type ChargeRow struct {
	Charge        stripe.Charge `json:"charge"`
	Amount        float64       `json:"amount"`
	AmountDisplay string        `json:"amount_display"`
}

func newChargeRow(c stripe.Charge) ChargeRow {
	amount := utils.MinorToMajor(c.Amount)
	return ChargeRow{
		Charge:        c,
		Amount:        amount,
		AmountDisplay: utils.FormatAmount(amount),
	}
}

type RevenueView struct {
	Rows       []ChargeRow                    `json:"rows"`
	Metadata   domain.PageMetadata            `json:"metadata"`
	Showing    string                         `json:"showing"`
	Pagination listing.Controls               `json:"pagination"`
	Metrics    Section[domain.RevenueMetrics] `json:"metrics"`
	History    Section[domain.RevenueHistory] `json:"history"`
}

type DashboardView struct {
	Revenue    Section[domain.RevenueMetrics]  `json:"revenue"`
	Businesses Section[domain.BusinessMetrics] `json:"businesses"`
	Customers  Section[domain.CustomerMetrics] `json:"customers"`
}
