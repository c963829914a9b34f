package proxying

import (
	"net/url"

	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow/pointnowclient"
)

// Param is one allow-listed query parameter of a proxy route
type Param struct {
	Name           string
	Default        string
	Required       bool
	MissingMessage string
}

// Route maps a local analytics route to its upstream endpoint
type Route struct {
	Name         string
	LocalPath    string
	UpstreamPath string
	Params       []Param
	Fallback     string
}

var (
	pageParam  = Param{Name: "page", Default: "1"}
	limitParam = Param{Name: "limit", Default: "10"}
	startDate  = Param{Name: "start_date"}
	endDate    = Param{Name: "end_date"}
)

var (
	BusinessSummary = Route{
		Name:         "business_summary",
		LocalPath:    "/api/analytics/business/summary",
		UpstreamPath: pointnowclient.PathBusinessSummary,
		Params:       []Param{pageParam, limitParam, {Name: "query"}, {Name: "country_code"}},
		Fallback:     "Failed to fetch businesses",
	}

	BusinessSummaryMetrics = Route{
		Name:         "business_summary_metrics",
		LocalPath:    "/api/analytics/business/summary/metrics",
		UpstreamPath: pointnowclient.PathBusinessSummaryMetrics,
		Params:       []Param{startDate, endDate},
		Fallback:     "Failed to fetch business metrics",
	}

	BusinessLeaderboard = Route{
		Name:         "business_leaderboard_customers",
		LocalPath:    "/api/analytics/business/leaderboard/customers",
		UpstreamPath: pointnowclient.PathBusinessLeaderboard,
		Params: []Param{
			{Name: "business_id", Required: true, MissingMessage: "Business ID is required"},
			pageParam,
			limitParam,
			startDate,
			endDate,
		},
		Fallback: "Failed to fetch customer leaderboard",
	}

	CustomersSummary = Route{
		Name:         "customers_summary",
		LocalPath:    "/api/analytics/customers/summary",
		UpstreamPath: pointnowclient.PathCustomersSummary,
		Params: []Param{
			pageParam,
			limitParam,
			{Name: "start_date_joined"},
			{Name: "end_date_joined"},
			{Name: "last_visit_start_date"},
			{Name: "last_visit_end_date"},
		},
		Fallback: "Failed to fetch customers",
	}

	CustomersSummaryMetrics = Route{
		Name:         "customers_summary_metrics",
		LocalPath:    "/api/analytics/customers/summary/metrics",
		UpstreamPath: pointnowclient.PathCustomersSummaryMetrics,
		Params:       []Param{startDate, endDate},
		Fallback:     "Failed to fetch customer metrics",
	}

	CustomerPointsHistory = Route{
		Name:         "customer_points_historical_data",
		LocalPath:    "/api/analytics/leaderboard/customer/points/historical-data",
		UpstreamPath: pointnowclient.PathCustomerPointsHistorical,
		Params: []Param{
			{Name: "customer_id", Required: true, MissingMessage: "Customer ID is required"},
		},
		Fallback: "Failed to fetch historical data",
	}

	RevenueMetrics = Route{
		Name:         "revenue_metrics",
		LocalPath:    "/api/analytics/revenue/metrics",
		UpstreamPath: pointnowclient.PathRevenueMetrics,
		Params:       []Param{startDate, endDate},
		Fallback:     "Failed to fetch revenue metrics",
	}

	RevenueHistory = Route{
		Name:         "revenue_historical_data",
		LocalPath:    "/api/analytics/revenue/historical-data",
		UpstreamPath: pointnowclient.PathRevenueHistorical,
		Params:       []Param{startDate, endDate},
		Fallback:     "Failed to fetch revenue historical data",
	}

	RevenueCharges = Route{
		Name:         "revenue_charges",
		LocalPath:    "/api/analytics/revenue/charges",
		UpstreamPath: pointnowclient.PathRevenueCharges,
		Params:       []Param{startDate, endDate, pageParam, limitParam},
		Fallback:     "Failed to fetch charges",
	}
)

// Routes lists every analytics proxy route
func Routes() []Route {
	return []Route{
		BusinessSummary,
		BusinessSummaryMetrics,
		BusinessLeaderboard,
		CustomersSummary,
		CustomersSummaryMetrics,
		CustomerPointsHistory,
		RevenueMetrics,
		RevenueHistory,
		RevenueCharges,
	}
}

// MissingParamError reports an absent required parameter
type MissingParamError struct {
	Param   string
	Message string
}

func (e *MissingParamError) Error() string {
	return e.Message
}

// BuildQuery narrows in to the route's allow-list. Empty values count as absent;
// defaults fill in for absent values.
func (r Route) BuildQuery(in url.Values) (url.Values, error) {
	out := url.Values{}

	for _, p := range r.Params {
		value := in.Get(p.Name)
		if value == "" {
			value = p.Default
		}

		if value == "" {
			if p.Required {
				return nil, &MissingParamError{Param: p.Name, Message: p.MissingMessage}
			}
			continue
		}

		out.Set(p.Name, value)
	}

	return out, nil
}
