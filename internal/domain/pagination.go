package domain

import "encoding/json"

// PageMetadata is echoed from the upstream list endpoints
type PageMetadata struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// UnmarshalJSON accepts both has_previous and the leaderboard's has_prev
func (m *PageMetadata) UnmarshalJSON(data []byte) error {
	type plain PageMetadata
	var aux struct {
		plain
		HasPrev *bool `json:"has_prev"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*m = PageMetadata(aux.plain)
	if aux.HasPrev != nil && !m.HasPrevious {
		m.HasPrevious = *aux.HasPrev
	}

	return nil
}
