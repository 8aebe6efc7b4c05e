// AngelaMos | 2026
// handler.go

package translation

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
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

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/admin/translations", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(middleware.RequireOperation(policy.OpManageTranslations))

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/init", h.Init)
		r.Put("/{keyID}", h.Update)
		r.Delete("/{keyID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.service.List(r.Context())
	if err != nil {
		core.Error(w, r, err, "translation")
		return
	}

	core.List(w, keys)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	var req CreateKeyRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	k, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	core.Created(w, k)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	var req UpdateKeyRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	k, err := h.service.Update(r.Context(), actor, chi.URLParam(r, "keyID"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	core.OK(w, k)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "keyID")); err != nil {
		core.Error(w, r, err, "translation")
		return
	}

	core.OK(w, DeleteResponse{Message: "translation deleted"})
}

func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetPrincipal(r.Context())

	resp, err := h.service.Init(r.Context(), actor)
	if err != nil {
		core.Error(w, r, err, "translation")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrDuplicateKey) {
		core.JSONError(w, core.DuplicateError("key and lang"))
		return
	}
	core.Error(w, r, err, "translation")
}
