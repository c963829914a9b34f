package viewing

import (
	"strings"

	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/internal/usecases/listing"
	"github.com/stripe/stripe-go/v72"
)

func businessFilters(p BusinessParams) []listing.Predicate[domain.Business] {
	return []listing.Predicate[domain.Business]{
		func(b domain.Business) bool {
			return p.Status == FilterAll || string(b.SubscriptionStatus()) == p.Status
		},
		func(b domain.Business) bool {
			switch p.Active {
			case ActiveOnly:
				return b.IsActive()
			case InactiveOnly:
				return !b.IsActive()
			default:
				return true
			}
		},
		func(b domain.Business) bool {
			return p.Created.ContainsTimestamp(b.CreatedAt)
		},
		func(b domain.Business) bool {
			if !p.SubscriptionEnd.IsSet() {
				return true
			}
			sub, ok := b.LatestSubscription.Get()
			return ok && p.SubscriptionEnd.ContainsTimestamp(sub.EndDate)
		},
	}
}

func customerFilters(p CustomerParams) []listing.Predicate[domain.Customer] {
	return []listing.Predicate[domain.Customer]{
		func(c domain.Customer) bool {
			return p.Search == "" ||
				listing.ContainsFold(c.Name, p.Search) ||
				listing.ContainsFold(c.Email, p.Search) ||
				strings.Contains(c.PhoneNumber, p.Search)
		},
		func(c domain.Customer) bool {
			switch p.Verified {
			case VerifiedOnly:
				return c.IsVerified
			case UnverifiedOnly:
				return !c.IsVerified
			default:
				return true
			}
		},
		func(c domain.Customer) bool {
			if p.BusinessID == "" {
				return true
			}
			for _, b := range c.Businesses {
				if b.ID == p.BusinessID {
					return true
				}
			}
			return false
		},
	}
}

func chargeFilters(p RevenueParams) []listing.Predicate[stripe.Charge] {
	return []listing.Predicate[stripe.Charge]{
		func(c stripe.Charge) bool {
			if p.Search == "" {
				return true
			}
			if listing.ContainsFold(c.ID, p.Search) {
				return true
			}
			if c.BillingDetails == nil {
				return false
			}
			return listing.ContainsFold(c.BillingDetails.Name, p.Search) ||
				listing.ContainsFold(c.BillingDetails.Email, p.Search)
		},
		func(c stripe.Charge) bool {
			return p.Status == FilterAll || string(c.Status) == p.Status
		},
	}
}
