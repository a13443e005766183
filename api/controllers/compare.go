package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/api/responses"
	"github.com/vahanbazar/vahanbazar-backend/internal/compare"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

// CompareBikes builds a side-by-side spec table for the requested ids.
// Ids arrive as a comma-separated "ids" query parameter.
func CompareBikes(svc compare.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "comparison service unavailable"))
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("ids"))
		if raw == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "ids query parameter required"))
			return
		}

		var ids []uuid.UUID
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid bike id "+part))
				return
			}
			ids = append(ids, id)
		}

		table, err := svc.Compare(r.Context(), ids)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, table)
	}
}
