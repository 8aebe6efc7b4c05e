// AngelaMos | 2026
// handler.go

package opportunity

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/opportunites", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Put("/{opportunityID}", h.Update)
		r.Delete("/{opportunityID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	var req CreateOpportunityRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	opp, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		core.Error(w, r, err, "account")
		return
	}

	core.Created(w, opp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	opps, err := h.service.List(r.Context(), actor, r.URL.Query().Get("compte_id"))
	if err != nil {
		core.Error(w, r, err, "opportunity")
		return
	}

	core.List(w, opps)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	var req UpdateOpportunityRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	opp, err := h.service.Update(r.Context(), actor, chi.URLParam(r, "opportunityID"), req)
	if err != nil {
		core.Error(w, r, err, "opportunity")
		return
	}

	core.OK(w, opp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	if err := h.service.Delete(r.Context(), actor, chi.URLParam(r, "opportunityID")); err != nil {
		core.Error(w, r, err, "opportunity")
		return
	}

	core.OK(w, DeleteResponse{Message: "opportunity deleted"})
}
