package configuring

import (
	"errors"
	"fmt"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("prices must not be negative")
	ErrNegativeTrialDays   = errors.New("trial days must not be negative")

	ErrFetchSettings = errors.New("error fetching settings")
	ErrSaveSettings  = errors.New("error saving settings")
	ErrFetchProducts = errors.New("error fetching products")
	ErrCreateProduct = errors.New("error creating product")
	ErrGenerateID    = errors.New("error generating product id")
)

// SettingsError carries the API error code alongside the cause
type SettingsError struct {
	Err     error
	Code    string
	Details string
}

func (e *SettingsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

func NewSettingsError(err error, code string, details string) *SettingsError {
	return &SettingsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsSettingsError unwraps err into a *SettingsError
func IsSettingsError(err error) (*SettingsError, bool) {
	var settingsErr *SettingsError
	if errors.As(err, &settingsErr) {
		return settingsErr, true
	}
	return nil, false
}
