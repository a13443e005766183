package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vahanbazar/vahanbazar-backend/api/responses"
	"github.com/vahanbazar/vahanbazar-backend/api/validators"
	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

// ListBikes returns the new-bike catalog filtered by the query string.
func ListBikes(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		filters, err := bikeFiltersFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bikes, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bikes)
	}
}

// GetBike returns a single catalog entry by id.
func GetBike(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "bikeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bike, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bike)
	}
}

// BikeBrands returns the distinct brands present in the catalog.
func BikeBrands(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
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

// BikeFuelTypes returns the distinct fuel types present in the catalog.
func BikeFuelTypes(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		fuelTypes, err := svc.FuelTypes(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, fuelTypes)
	}
}

type createBikeRequest struct {
	Name     string          `json:"name" validate:"required"`
	Brand    string          `json:"brand" validate:"required"`
	Price    int             `json:"price" validate:"required,min=0"`
	FuelType string          `json:"fuel_type" validate:"required"`
	Specs    dbtypes.SpecMap `json:"specs,omitempty"`
	Image    string          `json:"image,omitempty"`
}

// CreateBike handles catalog creation for dealers.
func CreateBike(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload createBikeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bike, err := svc.Create(r.Context(), catalog.CreateBikeInput{
			Name:      strings.TrimSpace(payload.Name),
			Brand:     strings.TrimSpace(payload.Brand),
			Price:     payload.Price,
			FuelType:  enums.FuelType(strings.TrimSpace(payload.FuelType)),
			Specs:     payload.Specs,
			Image:     strings.TrimSpace(payload.Image),
			ActorRole: requesterRole(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, bike)
	}
}

type updateBikeRequest struct {
	Name     *string         `json:"name,omitempty"`
	Brand    *string         `json:"brand,omitempty"`
	Price    *int            `json:"price,omitempty" validate:"omitempty,min=0"`
	FuelType *string         `json:"fuel_type,omitempty"`
	Specs    dbtypes.SpecMap `json:"specs,omitempty"`
	Image    *string         `json:"image,omitempty"`
}

// UpdateBike applies a partial update to a catalog entry.
func UpdateBike(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "bikeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateBikeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := catalog.UpdateBikeInput{
			ID:        id,
			Name:      payload.Name,
			Brand:     payload.Brand,
			Price:     payload.Price,
			Specs:     payload.Specs,
			Image:     payload.Image,
			ActorRole: requesterRole(r.Context()),
		}
		if payload.FuelType != nil {
			fuel := enums.FuelType(strings.TrimSpace(*payload.FuelType))
			input.FuelType = &fuel
		}

		bike, err := svc.Update(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bike)
	}
}

// DeleteBike removes a catalog entry.
func DeleteBike(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "bikeId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), catalog.DeleteBikeInput{ID: id, ActorRole: requesterRole(r.Context())}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

func bikeFiltersFromQuery(r *http.Request) (catalog.ListFilters, error) {
	filters := catalog.ListFilters{
		Brand:    strings.TrimSpace(r.URL.Query().Get("brand")),
		FuelType: strings.TrimSpace(r.URL.Query().Get("fuel_type")),
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
	}

	for _, key := range []string{"min_price", "max_price"} {
		raw := strings.TrimSpace(r.URL.Query().Get(key))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return catalog.ListFilters{}, pkgerrors.New(pkgerrors.CodeValidation, key+" must be a non-negative integer")
		}
		if key == "min_price" {
			filters.MinPrice = &value
		} else {
			filters.MaxPrice = &value
		}
	}

	return filters, nil
}
