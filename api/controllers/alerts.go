package controllers

import (
	"net/http"

	"github.com/vahanbazar/vahanbazar-backend/api/responses"
	"github.com/vahanbazar/vahanbazar-backend/api/validators"
	"github.com/vahanbazar/vahanbazar-backend/internal/alerts"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

type saveAlertRequest struct {
	BikeID           string `json:"bike_id" validate:"required"`
	ThresholdPercent int    `json:"threshold_percent,omitempty" validate:"omitempty,min=1,max=100"`
}

// SaveAlert creates or replaces the caller's price alert for a bike.
func SaveAlert(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "alerts service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload saveAlertRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bikeID, err := validators.ParseUUIDString(payload.BikeID, "bike_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		alert, err := svc.Save(r.Context(), alerts.SaveAlertInput{
			BikeID:           bikeID,
			ThresholdPercent: payload.ThresholdPercent,
			Actor:            alerts.Actor{UserID: userID, Role: requesterRole(r.Context())},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, alert)
	}
}

// ListAlerts returns the caller's price alerts.
func ListAlerts(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "alerts service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListMine(r.Context(), alerts.Actor{UserID: userID, Role: requesterRole(r.Context())})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// DeleteAlert removes a price alert owned by the caller.
func DeleteAlert(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "alerts service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "alertId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, alerts.Actor{UserID: userID, Role: requesterRole(r.Context())}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
