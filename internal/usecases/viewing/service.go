package viewing

import (
	"context"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pointnow/admin-bff/infrastructure/cache"
	"github.com/pointnow/admin-bff/infrastructure/integrator/pointnow"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/internal/usecases/listing"
	"github.com/pointnow/admin-bff/pkg/log"
	"github.com/stripe/stripe-go/v72"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	kindBusiness = "business"
	kindCustomer = "customer"
)

// Fallback messages used when the upstream sends none
const (
	MsgBusinessesFailed      = "Failed to fetch businesses"
	MsgBusinessMetricsFailed = "Failed to fetch business metrics"
	MsgLeaderboardFailed     = "Failed to fetch customer leaderboard"
	MsgCustomersFailed       = "Failed to fetch customers"
	MsgCustomerMetricsFailed = "Failed to fetch customer metrics"
	MsgPointsHistoryFailed   = "Failed to fetch historical data"
	MsgRevenueMetricsFailed  = "Failed to fetch revenue metrics"
	MsgRevenueHistoryFailed  = "Failed to fetch revenue historical data"
	MsgChargesFailed         = "Failed to fetch charges"
	MsgBusinessNotFound      = "Business not found"
	MsgCustomerNotFound      = "Customer not found"
)

type Viewer interface {
	Businesses(ctx context.Context, token string, params BusinessParams) (*BusinessListView, error)
	Business(ctx context.Context, token, id string, params BusinessDetailParams) (*BusinessDetailView, error)
	Customers(ctx context.Context, token string, params CustomerParams) (*CustomerListView, error)
	Customer(ctx context.Context, token, id string) (*CustomerDetailView, error)
	Revenue(ctx context.Context, token string, params RevenueParams) (*RevenueView, error)
	Dashboard(ctx context.Context, token string, dates listing.DateRange) *DashboardView
}

type Service struct {
	integrator pointnow.Integrator
	cache      cache.RecordCache
	cacheTTL   time.Duration
}

func NewService(integrator pointnow.Integrator, recordCache cache.RecordCache, cacheTTL time.Duration) Viewer {
	if recordCache == nil {
		recordCache = cache.NewNoopCache()
	}

	return &Service{
		integrator: integrator,
		cache:      recordCache,
		cacheTTL:   cacheTTL,
	}
}

func (s *Service) Businesses(ctx context.Context, token string, params BusinessParams) (*BusinessListView, error) {
	query := listing.Query{
		Page:        params.Page,
		Limit:       params.Limit,
		Search:      params.Query,
		SearchParam: "query",
		Params:      url.Values{"country_code": {params.CountryCode}},
	}

	fetch := func(ctx context.Context, q listing.Query) (*listing.Page[domain.Business], error) {
		page, err := s.integrator.ListBusinesses(ctx, token, q.Values())
		if err != nil {
			return nil, err
		}
		return &listing.Page[domain.Business]{Items: page.Businesses, Metadata: page.Metadata}, nil
	}

	var state listing.State[domain.Business]
	var metrics Section[domain.BusinessMetrics]

	var g errgroup.Group
	g.Go(func() error {
		state = listing.NewController(ctx, fetch, query).Load()
		return nil
	})
	g.Go(func() error {
		m, err := s.integrator.GetBusinessMetrics(ctx, token, params.Dates.Values("start_date", "end_date"))
		metrics = settle(m, err, MsgBusinessMetricsFailed)
		return nil
	})
	_ = g.Wait()

	if state.Err != nil {
		return nil, state.Err
	}

	refined := listing.Refine(state.Items, businessFilters(params)...)
	rows := make([]BusinessRow, 0, len(refined))
	for _, b := range refined {
		rows = append(rows, newBusinessRow(b))
	}

	pager := state.Pager()

	return &BusinessListView{
		Rows:       rows,
		Metadata:   state.Metadata,
		Showing:    pager.Showing(len(rows)),
		Pagination: pager.Controls(),
		Metrics:    metrics,
	}, nil
}

func (s *Service) Business(ctx context.Context, token, id string, params BusinessDetailParams) (*BusinessDetailView, error) {
	var business domain.Business
	var lookupErr error
	var leaderboard Section[domain.LeaderboardPage]

	var g errgroup.Group
	g.Go(func() error {
		business, lookupErr = s.findBusiness(ctx, token, id)
		return nil
	})
	g.Go(func() error {
		query := listing.Query{
			Page:   params.LeaderboardPage,
			Limit:  listing.DefaultLimit,
			Params: params.Dates.Values("start_date", "end_date"),
		}
		values := query.Values()
		values.Set("business_id", id)

		page, err := s.integrator.GetBusinessLeaderboard(ctx, token, values)
		leaderboard = settle(page, err, MsgLeaderboardFailed)
		return nil
	})
	_ = g.Wait()

	if lookupErr != nil {
		return nil, lookupErr
	}

	return &BusinessDetailView{
		BusinessRow: newBusinessRow(business),
		Leaderboard: leaderboard,
	}, nil
}

func (s *Service) findBusiness(ctx context.Context, token, id string) (domain.Business, error) {
	key := cache.LookupKey(kindBusiness, token, id)

	var cached domain.Business
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	fetch := func(ctx context.Context, page, limit int) ([]domain.Business, domain.PageMetadata, error) {
		q := listing.Query{Page: page, Limit: limit}
		result, err := s.integrator.ListBusinesses(ctx, token, q.Values())
		if err != nil {
			return nil, domain.PageMetadata{}, err
		}
		return result.Businesses, result.Metadata, nil
	}

	business, err := listing.FindByScan(ctx, fetch, listing.ScanLimit, func(b domain.Business) bool {
		return b.ID == id
	})
	if err != nil {
		return domain.Business{}, err
	}

	s.toCache(ctx, key, business)
	return business, nil
}

func (s *Service) Customers(ctx context.Context, token string, params CustomerParams) (*CustomerListView, error) {
	query := listing.Query{
		Page:  params.Page,
		Limit: params.Limit,
		Params: url.Values{
			"start_date_joined":     {params.JoinedFrom},
			"end_date_joined":       {params.JoinedTo},
			"last_visit_start_date": {params.LastVisitFrom},
			"last_visit_end_date":   {params.LastVisitTo},
		},
	}

	fetch := func(ctx context.Context, q listing.Query) (*listing.Page[domain.Customer], error) {
		page, err := s.integrator.ListCustomers(ctx, token, q.Values())
		if err != nil {
			return nil, err
		}
		return &listing.Page[domain.Customer]{Items: page.Customers, Metadata: page.Metadata}, nil
	}

	var state listing.State[domain.Customer]
	var metrics Section[domain.CustomerMetrics]

	var g errgroup.Group
	g.Go(func() error {
		state = listing.NewController(ctx, fetch, query).Load()
		return nil
	})
	g.Go(func() error {
		m, err := s.integrator.GetCustomerMetrics(ctx, token, params.Dates.Values("start_date", "end_date"))
		metrics = settle(m, err, MsgCustomerMetricsFailed)
		return nil
	})
	_ = g.Wait()

	if state.Err != nil {
		return nil, state.Err
	}

	rows := listing.Refine(state.Items, customerFilters(params)...)
	pager := state.Pager()

	return &CustomerListView{
		Rows:       rows,
		Metadata:   state.Metadata,
		Showing:    pager.Showing(len(rows)),
		Pagination: pager.Controls(),
		Metrics:    metrics,
	}, nil
}

func (s *Service) Customer(ctx context.Context, token, id string) (*CustomerDetailView, error) {
	var customer domain.Customer
	var lookupErr error
	var history Section[domain.PointsHistory]

	var g errgroup.Group
	g.Go(func() error {
		customer, lookupErr = s.findCustomer(ctx, token, id)
		return nil
	})
	g.Go(func() error {
		h, err := s.integrator.GetCustomerPointsHistory(ctx, token, url.Values{"customer_id": {id}})
		history = settle(h, err, MsgPointsHistoryFailed)
		return nil
	})
	_ = g.Wait()

	if lookupErr != nil {
		return nil, lookupErr
	}

	return &CustomerDetailView{
		Customer:      customer,
		PointsHistory: history,
	}, nil
}

func (s *Service) findCustomer(ctx context.Context, token, id string) (domain.Customer, error) {
	key := cache.LookupKey(kindCustomer, token, id)

	var cached domain.Customer
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	fetch := func(ctx context.Context, page, limit int) ([]domain.Customer, domain.PageMetadata, error) {
		q := listing.Query{Page: page, Limit: limit}
		result, err := s.integrator.ListCustomers(ctx, token, q.Values())
		if err != nil {
			return nil, domain.PageMetadata{}, err
		}
		return result.Customers, result.Metadata, nil
	}

	customer, err := listing.FindByScan(ctx, fetch, listing.ScanLimit, func(c domain.Customer) bool {
		return c.ID == id
	})
	if err != nil {
		return domain.Customer{}, err
	}

	s.toCache(ctx, key, customer)
	return customer, nil
}

func (s *Service) Revenue(ctx context.Context, token string, params RevenueParams) (*RevenueView, error) {
	dates := params.Dates.Values("start_date", "end_date")
	query := listing.Query{
		Page:   params.Page,
		Limit:  params.Limit,
		Params: dates,
	}

	fetch := func(ctx context.Context, q listing.Query) (*listing.Page[stripe.Charge], error) {
		page, err := s.integrator.ListCharges(ctx, token, q.Values())
		if err != nil {
			return nil, err
		}
		return &listing.Page[stripe.Charge]{Items: page.Charges, Metadata: page.Metadata}, nil
	}

	var state listing.State[stripe.Charge]
	var metrics Section[domain.RevenueMetrics]
	var history Section[domain.RevenueHistory]

	var g errgroup.Group
	g.Go(func() error {
		state = listing.NewController(ctx, fetch, query).Load()
		return nil
	})
	g.Go(func() error {
		m, err := s.integrator.GetRevenueMetrics(ctx, token, dates)
		metrics = settle(m, err, MsgRevenueMetricsFailed)
		return nil
	})
	g.Go(func() error {
		h, err := s.integrator.GetRevenueHistory(ctx, token, dates)
		history = settle(h, err, MsgRevenueHistoryFailed)
		return nil
	})
	_ = g.Wait()

	if state.Err != nil {
		return nil, state.Err
	}

	refined := listing.Refine(state.Items, chargeFilters(params)...)
	rows := make([]ChargeRow, 0, len(refined))
	for _, c := range refined {
		rows = append(rows, newChargeRow(c))
	}

	pager := state.Pager()

	return &RevenueView{
		Rows:       rows,
		Metadata:   state.Metadata,
		Showing:    pager.Showing(len(rows)),
		Pagination: pager.Controls(),
		Metrics:    metrics,
		History:    history,
	}, nil
}

// Dashboard joins the three metrics calls all-settled: a failing section
// never blocks the others
func (s *Service) Dashboard(ctx context.Context, token string, dates listing.DateRange) *DashboardView {
	values := dates.Values("start_date", "end_date")
	view := &DashboardView{}

	var g errgroup.Group
	g.Go(func() error {
		m, err := s.integrator.GetRevenueMetrics(ctx, token, values)
		view.Revenue = settle(m, err, MsgRevenueMetricsFailed)
		return nil
	})
	g.Go(func() error {
		m, err := s.integrator.GetBusinessMetrics(ctx, token, values)
		view.Businesses = settle(m, err, MsgBusinessMetricsFailed)
		return nil
	})
	g.Go(func() error {
		m, err := s.integrator.GetCustomerMetrics(ctx, token, values)
		view.Customers = settle(m, err, MsgCustomerMetricsFailed)
		return nil
	})
	_ = g.Wait()

	return view
}

func (s *Service) fromCache(ctx context.Context, key string, v any) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		log.ForContext(ctx).WithError(err).Warn("views: dropping undecodable cache entry")
		return false
	}

	return true
}

func (s *Service) toCache(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw, s.cacheTTL)
}
