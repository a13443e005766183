package controllers

import (
	"net/http"
	"strings"

	"github.com/vahanbazar/vahanbazar-backend/api/responses"
	"github.com/vahanbazar/vahanbazar-backend/api/validators"
	"github.com/vahanbazar/vahanbazar-backend/internal/bookings"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

type createBookingRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	BikeID   string `json:"bike_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
}

// CreateBooking schedules a test ride. Open to anonymous callers; the
// dealer follows up over the phone number supplied.
func CreateBooking(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		var payload createBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bikeID, err := validators.ParseUUIDString(payload.BikeID, "bike_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Create(r.Context(), bookings.CreateBookingInput{
			UserName: strings.TrimSpace(payload.UserName),
			Phone:    strings.TrimSpace(payload.Phone),
			BikeID:   bikeID,
			Date:     strings.TrimSpace(payload.Date),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}

// ListBookings returns every test ride for the dealer dashboard.
// Reviewer-only route.
func ListBookings(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		rides, err := svc.ListForDealer(r.Context(), bookings.ListInput{ActorRole: requesterRole(r.Context())})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rides)
	}
}
