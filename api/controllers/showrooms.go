package controllers

import (
	"net/http"
	"strings"

	"github.com/vahanbazar/vahanbazar-backend/api/responses"
	"github.com/vahanbazar/vahanbazar-backend/api/validators"
	"github.com/vahanbazar/vahanbazar-backend/internal/showrooms"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

// ListShowrooms returns showrooms filtered by brand and location.
func ListShowrooms(svc showrooms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "showrooms service unavailable"))
			return
		}

		list, err := svc.List(r.Context(), showrooms.ListFilters{
			Brand:    strings.TrimSpace(r.URL.Query().Get("brand")),
			Location: strings.TrimSpace(r.URL.Query().Get("location")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetShowroom returns a single showroom by id.
func GetShowroom(svc showrooms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "showrooms service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "showroomId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		showroom, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, showroom)
	}
}
