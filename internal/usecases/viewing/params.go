package viewing

import (
	"net/url"
	"slices"
	"time"

	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/internal/usecases/listing"
)

// ValidationError is a malformed view parameter
type ValidationError struct {
	Param string
	Err   error
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Param + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

const (
	FilterAll       = "all"
	ActiveOnly      = "active"
	InactiveOnly    = "inactive"
	VerifiedOnly    = "verified"
	UnverifiedOnly  = "unverified"
	ChargeSucceeded = "succeeded"
	ChargePending   = "pending"
	ChargeFailed    = "failed"
)

type BusinessParams struct {
	Page            int
	Limit           int
	Query           string
	CountryCode     string
	Status          string
	Active          string
	Created         listing.Interval
	SubscriptionEnd listing.Interval
	Dates           listing.DateRange
}

type BusinessDetailParams struct {
	LeaderboardPage int
	Dates           listing.DateRange
}

type CustomerParams struct {
	Page          int
	Limit         int
	JoinedFrom    string
	JoinedTo      string
	LastVisitFrom string
	LastVisitTo   string
	Search        string
	Verified      string
	BusinessID    string
	Dates         listing.DateRange
}

type RevenueParams struct {
	Page   int
	Limit  int
	Search string
	Status string
	Dates  listing.DateRange
}

func ParseBusinessParams(in url.Values, now time.Time) (BusinessParams, error) {
	page, limit, err := listing.ParsePaging(in)
	if err != nil {
		return BusinessParams{}, &ValidationError{Param: "paging", Err: err}
	}

	status := valueOr(in.Get("status"), FilterAll)
	if status != FilterAll {
		if _, ok := domain.ParseSubscriptionStatus(status); !ok {
			return BusinessParams{}, invalidChoice("status", status)
		}
	}

	active := valueOr(in.Get("active"), FilterAll)
	if !slices.Contains([]string{FilterAll, ActiveOnly, InactiveOnly}, active) {
		return BusinessParams{}, invalidChoice("active", active)
	}

	created, err := listing.ParseInterval(in.Get("created_from"), in.Get("created_to"))
	if err != nil {
		return BusinessParams{}, &ValidationError{Param: "created", Err: err}
	}

	subscriptionEnd, err := listing.ParseInterval(in.Get("subscription_end_from"), in.Get("subscription_end_to"))
	if err != nil {
		return BusinessParams{}, &ValidationError{Param: "subscription_end", Err: err}
	}

	dates, err := listing.ParseDateRange(in.Get("start_date"), in.Get("end_date"), now)
	if err != nil {
		return BusinessParams{}, &ValidationError{Param: "date range", Err: err}
	}

	return BusinessParams{
		Page:            page,
		Limit:           limit,
		Query:           in.Get("query"),
		CountryCode:     in.Get("country_code"),
		Status:          status,
		Active:          active,
		Created:         created,
		SubscriptionEnd: subscriptionEnd,
		Dates:           dates,
	}, nil
}

func ParseBusinessDetailParams(in url.Values, now time.Time) (BusinessDetailParams, error) {
	page, _, err := listing.ParsePaging(url.Values{"page": {in.Get("leaderboard_page")}})
	if err != nil {
		return BusinessDetailParams{}, &ValidationError{Param: "leaderboard_page", Err: err}
	}

	dates, err := listing.ParseDateRange(in.Get("start_date"), in.Get("end_date"), now)
	if err != nil {
		return BusinessDetailParams{}, &ValidationError{Param: "date range", Err: err}
	}

	return BusinessDetailParams{LeaderboardPage: page, Dates: dates}, nil
}

func ParseCustomerParams(in url.Values, now time.Time) (CustomerParams, error) {
	page, limit, err := listing.ParsePaging(in)
	if err != nil {
		return CustomerParams{}, &ValidationError{Param: "paging", Err: err}
	}

	verified := valueOr(in.Get("verified"), FilterAll)
	if !slices.Contains([]string{FilterAll, VerifiedOnly, UnverifiedOnly}, verified) {
		return CustomerParams{}, invalidChoice("verified", verified)
	}

	for _, key := range []string{"start_date_joined", "end_date_joined", "last_visit_start_date", "last_visit_end_date"} {
		if _, err := listing.ParseInterval(in.Get(key), ""); err != nil {
			return CustomerParams{}, &ValidationError{Param: key, Err: err}
		}
	}

	dates, err := listing.ParseDateRange(in.Get("start_date"), in.Get("end_date"), now)
	if err != nil {
		return CustomerParams{}, &ValidationError{Param: "date range", Err: err}
	}

	return CustomerParams{
		Page:          page,
		Limit:         limit,
		JoinedFrom:    in.Get("start_date_joined"),
		JoinedTo:      in.Get("end_date_joined"),
		LastVisitFrom: in.Get("last_visit_start_date"),
		LastVisitTo:   in.Get("last_visit_end_date"),
		Search:        in.Get("search"),
		Verified:      verified,
		BusinessID:    in.Get("business_id"),
		Dates:         dates,
	}, nil
}

func ParseRevenueParams(in url.Values, now time.Time) (RevenueParams, error) {
	page, limit, err := listing.ParsePaging(in)
	if err != nil {
		return RevenueParams{}, &ValidationError{Param: "paging", Err: err}
	}

	status := valueOr(in.Get("status"), FilterAll)
	if !slices.Contains([]string{FilterAll, ChargeSucceeded, ChargePending, ChargeFailed}, status) {
		return RevenueParams{}, invalidChoice("status", status)
	}

	dates, err := listing.ParseDateRange(in.Get("start_date"), in.Get("end_date"), now)
	if err != nil {
		return RevenueParams{}, &ValidationError{Param: "date range", Err: err}
	}

	return RevenueParams{
		Page:   page,
		Limit:  limit,
		Search: in.Get("search"),
		Status: status,
		Dates:  dates,
	}, nil
}

// ParseDates reads the start_date/end_date pair used by metrics sections
func ParseDates(in url.Values, now time.Time) (listing.DateRange, error) {
	dates, err := listing.ParseDateRange(in.Get("start_date"), in.Get("end_date"), now)
	if err != nil {
		return listing.DateRange{}, &ValidationError{Param: "date range", Err: err}
	}
	return dates, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

type choiceError string

func (e choiceError) Error() string {
	return "unsupported value " + string(e)
}

func invalidChoice(param, value string) error {
	return &ValidationError{Param: param, Err: choiceError(value)}
}
