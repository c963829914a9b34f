package domain

import (
	"bytes"
	"encoding/json"
)

// FreePlanType marks a trial subscription
const FreePlanType = "FREE"

type Subscription struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Provider  string `json:"provider"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}

// OptionalSubscription is either Present(Subscription) or Absent. The upstream sends
// an empty object for "no subscription"; that is resolved here, once, while decoding.
type OptionalSubscription struct {
	sub     Subscription
	present bool
}

// SomeSubscription wraps s as a present subscription
func SomeSubscription(s Subscription) OptionalSubscription {
	return OptionalSubscription{sub: s, present: true}
}

// NoSubscription is the absent variant
func NoSubscription() OptionalSubscription {
	return OptionalSubscription{}
}

// Get returns the subscription and whether it is present
func (o OptionalSubscription) Get() (Subscription, bool) {
	return o.sub, o.present
}

func (o OptionalSubscription) IsPresent() bool {
	return o.present
}

func (o *OptionalSubscription) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = NoSubscription()
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return err
	}
	if len(fields) == 0 {
		*o = NoSubscription()
		return nil
	}

	var s Subscription
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return err
	}

	*o = SomeSubscription(s)
	return nil
}

// MarshalJSON keeps the upstream shape: {} when absent
func (o OptionalSubscription) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("{}"), nil
	}
	return json.Marshal(o.sub)
}

type SubscriptionStatus string

const (
	SubscriptionNone    SubscriptionStatus = "none"
	SubscriptionExpired SubscriptionStatus = "expired"
	SubscriptionTrial   SubscriptionStatus = "trial"
	SubscriptionActive  SubscriptionStatus = "active"
)

// ParseSubscriptionStatus validates a status filter value
func ParseSubscriptionStatus(v string) (SubscriptionStatus, bool) {
	switch s := SubscriptionStatus(v); s {
	case SubscriptionNone, SubscriptionExpired, SubscriptionTrial, SubscriptionActive:
		return s, true
	}
	return "", false
}

// DeriveSubscriptionStatus maps a business's latest subscription to its display status
func DeriveSubscriptionStatus(o OptionalSubscription) SubscriptionStatus {
	s, ok := o.Get()
	switch {
	case !ok:
		return SubscriptionNone
	case !s.IsActive:
		return SubscriptionExpired
	case s.Type == FreePlanType:
		return SubscriptionTrial
	default:
		return SubscriptionActive
	}
}
