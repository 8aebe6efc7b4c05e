// AngelaMos | 2026
// handler.go

package account

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
	r.Route("/comptes", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{accountID}", h.Get)
		r.Delete("/{accountID}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	var req CreateAccountRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	account, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		core.Error(w, r, err, "account")
		return
	}

	core.Created(w, account)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	accounts, err := h.service.List(r.Context(), actor)
	if err != nil {
		core.Error(w, r, err, "account")
		return
	}

	core.List(w, accounts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	account, err := h.service.Get(r.Context(), actor, chi.URLParam(r, "accountID"))
	if err != nil {
		core.Error(w, r, err, "account")
		return
	}

	core.OK(w, account)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	if err := h.service.Delete(r.Context(), actor, chi.URLParam(r, "accountID")); err != nil {
		core.Error(w, r, err, "account")
		return
	}

	core.OK(w, DeleteResponse{Message: "account deleted"})
}
