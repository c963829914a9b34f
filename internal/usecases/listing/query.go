package listing

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// ScanLimit is the page size used when scanning a list for one record
	ScanLimit = 100
)

// Query is the server-side part of a list request
type Query struct {
	Page        int
	Limit       int
	Search      string
	SearchParam string
	Params      url.Values
}

// Values encodes q for the upstream. Page is floored at 1 and limit defaults to 10.
func (q Query) Values() url.Values {
	v := url.Values{}
	for key, values := range q.Params {
		for _, value := range values {
			if value != "" {
				v.Add(key, value)
			}
		}
	}

	page := q.Page
	if page < DefaultPage {
		page = DefaultPage
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))

	if q.Search != "" && q.SearchParam != "" {
		v.Set(q.SearchParam, q.Search)
	}

	return v
}

func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// ParsePaging reads page and limit from a request query. Absent values take the defaults.
func ParsePaging(in url.Values) (page, limit int, err error) {
	page, err = parsePositive(in.Get("page"), DefaultPage)
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid page")
	}

	limit, err = parsePositive(in.Get("limit"), DefaultLimit)
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid limit")
	}

	return page, limit, nil
}

func parsePositive(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.Errorf("%d is not positive", n)
	}

	return n, nil
}
