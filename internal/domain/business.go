package domain

type BusinessAdmin struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BusinessUsageSummary struct {
	Service string  `json:"service"`
	Count   int     `json:"count"`
	Cost    float64 `json:"cost"`
}

type BusinessRegion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

type Business struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Email              string                 `json:"email"`
	Status             string                 `json:"status"`
	RegistrationNumber string                 `json:"registration_number"`
	StaffCount         int                    `json:"staff_count"`
	CustomersCount     int                    `json:"customers_count"`
	BranchesCount      int                    `json:"branches_count"`
	TotalPoints        int64                  `json:"total_points"`
	Admins             []BusinessAdmin        `json:"admins"`
	UsageSummary       []BusinessUsageSummary `json:"usage_summary"`
	LatestSubscription OptionalSubscription   `json:"latest_subscription"`
	Regions            []BusinessRegion       `json:"regions"`
	CreatedAt          string                 `json:"created_at"`
}

// IsActive reports whether the business currently holds an active subscription
func (b Business) IsActive() bool {
	s, ok := b.LatestSubscription.Get()
	return ok && s.IsActive
}

func (b Business) SubscriptionStatus() SubscriptionStatus {
	return DeriveSubscriptionStatus(b.LatestSubscription)
}

type BusinessPage struct {
	Businesses []Business   `json:"businesses"`
	Metadata   PageMetadata `json:"metadata"`
}

type RecentBusiness struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              *string `json:"email"`
	PhoneNumber        *string `json:"phone_number"`
	Status             string  `json:"status"`
	RegistrationNumber string  `json:"registration_number"`
	Address            string  `json:"address"`
	CreatedAt          string  `json:"created_at"`
}

type MostCustomersBusiness struct {
	RecentBusiness
	TotalCustomers int `json:"total_customers"`
}

type MostPointsBusiness struct {
	RecentBusiness
	TotalPoints int64 `json:"total_points"`
}

type BusinessMetrics struct {
	TotalBusiness         int                     `json:"total_business"`
	RecentBusiness        []RecentBusiness        `json:"recent_business"`
	MostCustomersBusiness []MostCustomersBusiness `json:"most_customers_business"`
	MostPointsBusiness    []MostPointsBusiness    `json:"most_points_business"`
}

type LeaderboardCustomer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	TotalPoints int64  `json:"total_points"`
	TotalVisits int    `json:"total_visits"`
	LastVisitAt string `json:"last_visit_at"`
}

type LeaderboardPage struct {
	Customers []LeaderboardCustomer `json:"customers"`
	Metadata  PageMetadata          `json:"metadata"`
}
