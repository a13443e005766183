package controllers

import (
	"net/http"
	"strings"

	"github.com/vahanbazar/vahanbazar-backend/api/responses"
	"github.com/vahanbazar/vahanbazar-backend/api/validators"
	"github.com/vahanbazar/vahanbazar-backend/internal/launches"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

// ListLaunches returns upcoming launches filtered by brand and type.
func ListLaunches(svc launches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "launches service unavailable"))
			return
		}

		list, err := svc.ListUpcoming(r.Context(), launches.ListFilters{
			Brand: strings.TrimSpace(r.URL.Query().Get("brand")),
			Type:  strings.TrimSpace(r.URL.Query().Get("type")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetLaunch returns a single launch by id.
func GetLaunch(svc launches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "launches service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "launchId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		launch, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, launch)
	}
}

// LaunchBrands returns the distinct brands with scheduled launches.
func LaunchBrands(svc launches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "launches service unavailable"))
			return
		}

		brands, err := svc.Brands(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, brands)
	}
}

type createLaunchRequest struct {
	Name          string  `json:"name" validate:"required"`
	Date          string  `json:"date" validate:"required"`
	Brand         string  `json:"brand" validate:"required"`
	Type          string  `json:"type" validate:"required"`
	ExpectedPrice *int    `json:"expected_price,omitempty" validate:"omitempty,min=0"`
	Image         *string `json:"image,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// CreateLaunch schedules a launch announcement. Reviewer-only route.
func CreateLaunch(svc launches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "launches service unavailable"))
			return
		}

		var payload createLaunchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		launch, err := svc.Create(r.Context(), launches.CreateLaunchInput{
			Name:          strings.TrimSpace(payload.Name),
			Date:          strings.TrimSpace(payload.Date),
			Brand:         strings.TrimSpace(payload.Brand),
			Type:          strings.TrimSpace(payload.Type),
			ExpectedPrice: payload.ExpectedPrice,
			Image:         payload.Image,
			Description:   payload.Description,
			ActorRole:     requesterRole(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, launch)
	}
}

type updateLaunchRequest struct {
	Name          *string `json:"name,omitempty"`
	Date          *string `json:"date,omitempty"`
	Brand         *string `json:"brand,omitempty"`
	Type          *string `json:"type,omitempty"`
	ExpectedPrice *int    `json:"expected_price,omitempty" validate:"omitempty,min=0"`
	Image         *string `json:"image,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// UpdateLaunch applies a partial update. Reviewer-only route.
func UpdateLaunch(svc launches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "launches service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "launchId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateLaunchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		launch, err := svc.Update(r.Context(), launches.UpdateLaunchInput{
			ID:            id,
			Name:          payload.Name,
			Date:          payload.Date,
			Brand:         payload.Brand,
			Type:          payload.Type,
			ExpectedPrice: payload.ExpectedPrice,
			Image:         payload.Image,
			Description:   payload.Description,
			ActorRole:     requesterRole(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, launch)
	}
}

// DeleteLaunch removes a launch announcement. Reviewer-only route.
func DeleteLaunch(svc launches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "launches service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "launchId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, requesterRole(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
