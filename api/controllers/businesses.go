package controllers

import (
	"net/http"

	"github.com/emabi2002/pngsme/api/responses"
	"github.com/emabi2002/pngsme/api/validators"
	businessessvc "github.com/emabi2002/pngsme/internal/businesses"
	"github.com/emabi2002/pngsme/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RegisterBusiness creates a pending seller business for the current user.
func RegisterBusiness(svc businessessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload businessessvc.RegisterInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		business, err := svc.Register(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, business)
	}
}

// ListBusinesses returns approved businesses for browsing.
func ListBusinesses(svc businessessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := paginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filters := businessessvc.ListFilters{
			Province: r.URL.Query().Get("province"),
			Sector:   r.URL.Query().Get("sector"),
			Query:    r.URL.Query().Get("q"),
		}

		list, err := svc.ListApproved(r.Context(), params, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetBusiness returns a business by slug.
func GetBusiness(svc businessessvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		business, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, business)
	}
}
