package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vahanbazar/vahanbazar-backend/api/middleware"
	"github.com/vahanbazar/vahanbazar-backend/api/responses"
	"github.com/vahanbazar/vahanbazar-backend/api/validators"
	"github.com/vahanbazar/vahanbazar-backend/internal/used"
	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
	"github.com/vahanbazar/vahanbazar-backend/pkg/pagination"
)

// listingActor builds a used.Actor from the request context when the
// caller is authenticated, or nil for anonymous browsing.
func listingActor(r *http.Request) *used.Actor {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return nil
	}
	id, err := requesterID(r.Context())
	if err != nil {
		return nil
	}
	return &used.Actor{UserID: id, Role: requesterRole(r.Context())}
}

// BrowseListings returns a cursor-paginated page of used listings.
// Anonymous callers only ever see approved listings; reviewers may
// filter by any status.
func BrowseListings(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		input, err := listInputFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), input, listingActor(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// GetListing returns a single listing, honoring visibility rules for
// the caller.
func GetListing(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "listingId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listing, err := svc.Get(r.Context(), id, listingActor(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

// ListMyListings returns all of the caller's own listings regardless
// of status.
func ListMyListings(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listings, err := svc.ListMine(r.Context(), used.Actor{UserID: userID, Role: requesterRole(r.Context())})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listings)
	}
}

type listingRequest struct {
	Title        string   `json:"title" validate:"required"`
	Brand        string   `json:"brand" validate:"required"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1900"`
	Price        int      `json:"price" validate:"required,min=1"`
	Kms          *int     `json:"kms,omitempty" validate:"omitempty,min=0"`
	Condition    *string  `json:"condition,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Images       []string `json:"images,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
}

// CreateListing submits a new used listing. It always enters the
// review queue as pending.
func CreateListing(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload listingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listing, err := svc.Create(r.Context(), used.CreateListingInput{
			Title:        strings.TrimSpace(payload.Title),
			Brand:        strings.TrimSpace(payload.Brand),
			Model:        payload.Model,
			Year:         payload.Year,
			Price:        payload.Price,
			Kms:          payload.Kms,
			Condition:    payload.Condition,
			Location:     payload.Location,
			Images:       dbtypes.StringList(payload.Images),
			Description:  payload.Description,
			ContactPhone: payload.ContactPhone,
			Actor:        used.Actor{UserID: userID, Role: requesterRole(r.Context())},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, listing)
	}
}

type updateListingRequest struct {
	Title        *string  `json:"title,omitempty"`
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1900"`
	Price        *int     `json:"price,omitempty" validate:"omitempty,min=1"`
	Kms          *int     `json:"kms,omitempty" validate:"omitempty,min=0"`
	Condition    *string  `json:"condition,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Images       []string `json:"images,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
}

// UpdateListing applies a partial edit to the caller's listing.
func UpdateListing(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "listingId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateListingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listing, err := svc.Update(r.Context(), used.UpdateListingInput{
			ID:           id,
			Title:        payload.Title,
			Brand:        payload.Brand,
			Model:        payload.Model,
			Year:         payload.Year,
			Price:        payload.Price,
			Kms:          payload.Kms,
			Condition:    payload.Condition,
			Location:     payload.Location,
			Images:       dbtypes.StringList(payload.Images),
			Description:  payload.Description,
			ContactPhone: payload.ContactPhone,
			Actor:        used.Actor{UserID: userID, Role: requesterRole(r.Context())},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

// DeleteListing removes a listing owned by the caller (or any listing
// for admins).
func DeleteListing(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "listingId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id, used.Actor{UserID: userID, Role: requesterRole(r.Context())}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// ApproveListing publishes a pending listing. Reviewer-only route.
func ApproveListing(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "listingId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listing, err := svc.Approve(r.Context(), id, used.Actor{UserID: userID, Role: requesterRole(r.Context())})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

// MarkListingSold closes a listing. Idempotent for the owner.
func MarkListingSold(svc used.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "listings service unavailable"))
			return
		}

		userID, err := requesterID(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "listingId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listing, err := svc.MarkSold(r.Context(), id, used.Actor{UserID: userID, Role: requesterRole(r.Context())})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

func listInputFromQuery(r *http.Request) (used.ListInput, error) {
	query := r.URL.Query()

	input := used.ListInput{
		Filters: used.ListFilters{
			Query: strings.TrimSpace(query.Get("q")),
			Brand: strings.TrimSpace(query.Get("brand")),
		},
		Pagination: pagination.Params{
			Cursor: strings.TrimSpace(query.Get("cursor")),
		},
	}

	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			return used.ListInput{}, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer")
		}
		input.Pagination.Limit = value
	}

	for _, key := range []string{"min_price", "max_price"} {
		raw := strings.TrimSpace(query.Get(key))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return used.ListInput{}, pkgerrors.New(pkgerrors.CodeValidation, key+" must be a non-negative integer")
		}
		if key == "min_price" {
			input.Filters.MinPrice = &value
		} else {
			input.Filters.MaxPrice = &value
		}
	}

	if raw := strings.TrimSpace(query.Get("status")); raw != "" {
		status, err := enums.ParseListingStatus(raw)
		if err != nil {
			return used.ListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		input.Filters.Status = &status
	}

	return input, nil
}
