package listing

import (
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/pkg/utils"
)

// DateRange drives the metrics requests of a view
type DateRange struct {
	From time.Time
	To   time.Time
}

// DefaultDateRange is one year ago through now
func DefaultDateRange(now time.Time) DateRange {
	return DateRange{
		From: now.AddDate(-1, 0, 0),
		To:   now,
	}
}

// ParseDateRange reads YYYY-MM-DD bounds. When both are empty the default range applies.
func ParseDateRange(from, to string, now time.Time) (DateRange, error) {
	if from == "" && to == "" {
		return DefaultDateRange(now), nil
	}

	start, err := utils.ParseDate(from)
	if err != nil {
		return DateRange{}, errors.Wrap(err, "invalid start date")
	}

	end, err := utils.ParseDate(to)
	if err != nil {
		return DateRange{}, errors.Wrap(err, "invalid end date")
	}

	return DateRange{From: start, To: end}, nil
}

// Values encodes the set bounds under the given parameter names
func (d DateRange) Values(startKey, endKey string) url.Values {
	v := url.Values{}
	if !d.From.IsZero() {
		v.Set(startKey, utils.FormatDate(d.From))
	}
	if !d.To.IsZero() {
		v.Set(endKey, utils.FormatDate(d.To))
	}
	return v
}

// Interval is a client-side date filter. A zero From disables it; a zero To
// means the single day From.
type Interval struct {
	From time.Time
	To   time.Time
}

func ParseInterval(from, to string) (Interval, error) {
	start, err := utils.ParseDate(from)
	if err != nil {
		return Interval{}, errors.Wrap(err, "invalid interval start")
	}

	end, err := utils.ParseDate(to)
	if err != nil {
		return Interval{}, errors.Wrap(err, "invalid interval end")
	}

	return Interval{From: start, To: end}, nil
}

func (i Interval) IsSet() bool {
	return !i.From.IsZero()
}

// Contains compares calendar days, inclusive on both ends
func (i Interval) Contains(t time.Time) bool {
	if !i.IsSet() {
		return true
	}

	end := i.To
	if end.IsZero() {
		end = i.From
	}

	day := truncateDay(t)
	return !day.Before(truncateDay(i.From)) && !day.After(truncateDay(end))
}

// ContainsTimestamp parses an upstream timestamp; an unparseable or empty value
// only matches when the interval is unset
func (i Interval) ContainsTimestamp(raw string) bool {
	if !i.IsSet() {
		return true
	}

	t, ok := utils.ParseTimestamp(raw)
	if !ok {
		return false
	}

	return i.Contains(t)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
