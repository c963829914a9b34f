package handler

import (
	"net/http"

	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/internal/usecases/configuring"
	"github.com/pointnow/admin-bff/pkg/apiErrors"
	"github.com/pointnow/admin-bff/pkg/log"
)

type MaintenanceRequest struct {
	Enabled *bool `json:"enabled"`
}

func GetSettings(service configuring.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetSettings(r.Context())
		if err != nil {
			handleSettingsError(w, r, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, settings)
	}
}

func SetMaintenanceMode(service configuring.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MaintenanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		if req.Enabled == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "enabled is required")
			return
		}

		settings, err := service.SetMaintenanceMode(r.Context(), *req.Enabled)
		if err != nil {
			handleSettingsError(w, r, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, settings)
	}
}

func ListProducts(service configuring.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			handleSettingsError(w, r, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, products)
	}
}

func CreateProduct(service configuring.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		product, err := service.CreateProduct(r.Context(), req)
		if err != nil {
			handleSettingsError(w, r, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusCreated, product)
	}
}

func handleSettingsError(w http.ResponseWriter, r *http.Request, err error) {
	if settingsErr, ok := configuring.IsSettingsError(err); ok {
		if settingsErr.Code == apiErrors.ErrDatabaseOperation {
			log.ForContext(r.Context()).WithError(err).Error("settings: storage failure")
			apiErrors.WriteError(w, settingsErr.Code, apiErrors.MsgInternalServerError)
			return
		}
		apiErrors.WriteError(w, settingsErr.Code, settingsErr.Err.Error())
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("settings: unexpected error")
	apiErrors.WriteInternal(w)
}
