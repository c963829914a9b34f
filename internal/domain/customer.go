package domain

type CustomerBusiness struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	TotalPoints int64   `json:"total_points"`
	TotalVisits int     `json:"total_visits"`
	LastVisitAt string  `json:"last_visit_at"`
}

type Customer struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	PhoneNumber     string             `json:"phone_number"`
	IsVerified      bool               `json:"is_verified"`
	JoinedAt        string             `json:"joined_at"`
	TotalBusinesses int                `json:"total_businesses"`
	TotalPoints     int64              `json:"total_points"`
	TotalVisits     int                `json:"total_visits"`
	LastVisitAt     string             `json:"last_visit_at"`
	Businesses      []CustomerBusiness `json:"businesses"`
}

type CustomerPage struct {
	Customers []Customer   `json:"customers"`
	Metadata  PageMetadata `json:"metadata"`
}

type CustomerMetrics struct {
	TotalCustomers            int `json:"total_customers"`
	ActiveCustomersLast7Days  int `json:"active_customers_last_7_days"`
	ActiveCustomersLast30Days int `json:"active_customers_last_30_days"`
	NewCustomersLastMonth     int `json:"new_customers_last_month"`
}

type PointsHistoricalPoint struct {
	Count       int    `json:"count"`
	Date        string `json:"date"`
	TotalPoints int64  `json:"total_points"`
}

type PointsHistory struct {
	HistoricalData []PointsHistoricalPoint `json:"historical_data"`
}
