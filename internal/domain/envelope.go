package domain

// Envelope wraps every upstream response body
type Envelope[T any] struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Data       T      `json:"data"`
}
