package pointnowclient

// Upstream API paths
const (
	PathBusinessSummary          = "/analytics/business/summary"
	PathBusinessSummaryMetrics   = "/analytics/business/summary/metrics"
	PathBusinessLeaderboard      = "/analytics/business/leaderboard/customers"
	PathCustomersSummary         = "/analytics/customers/summary"
	PathCustomersSummaryMetrics  = "/analytics/customers/summary/metrics"
	PathCustomerPointsHistorical = "/analytics/leaderboard/customer/points/historical-data"
	PathRevenueMetrics           = "/analytics/revenue/metrics"
	PathRevenueHistorical        = "/analytics/revenue/historical-data"
	PathRevenueCharges           = "/analytics/revenue/charges"
	PathSuperAdminLogin          = "/auth/login/super_admin"
)
