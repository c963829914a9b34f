package domain

import "github.com/stripe/stripe-go/v72"

type RevenueTotals struct {
	TotalRevenue             float64 `json:"total_revenue"`
	TotalCustomers           int     `json:"total_customers"`
	TotalActiveSubscriptions int     `json:"total_active_subscriptions"`
}

type RevenueMetrics struct {
	Metrics RevenueTotals `json:"metrics"`
}

type RevenueHistoricalPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type RevenueHistory struct {
	HistoricalData []RevenueHistoricalPoint `json:"historical_data"`
}

// ChargePage carries payment-provider charges relayed by the upstream
type ChargePage struct {
	Charges  []stripe.Charge `json:"charges"`
	Metadata PageMetadata    `json:"metadata"`
}
