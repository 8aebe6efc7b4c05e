// AngelaMos | 2026
// handler.go

package survey

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
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

// RegisterRoutes leaves submission open to customers without an account;
// reading and deleting results needs a session.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/surveys", func(r chi.Router) {
		r.Post("/responses", h.SubmitResponse)
		r.Post("/scores", h.SubmitScore)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Get("/responses", h.ListResponses)
			r.Delete("/responses/{responseID}", h.DeleteResponse)
			r.Get("/scores", h.ListScores)
			r.Delete("/scores/{scoreID}", h.DeleteScore)
		})
	})
}

func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req CreateResponseRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	resp, err := h.service.SubmitResponse(r.Context(), req)
	if err != nil {
		core.Error(w, r, err, "survey response")
		return
	}

	core.Created(w, resp)
}

func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var req CreateScoreRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	score, err := h.service.SubmitScore(r.Context(), req)
	if err != nil {
		core.Error(w, r, err, "survey response")
		return
	}

	core.Created(w, score)
}

func (h *Handler) ListResponses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.service.ListResponses(r.Context())
	if err != nil {
		core.Error(w, r, err, "survey response")
		return
	}

	core.List(w, responses)
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.service.ListScores(r.Context(), r.URL.Query().Get("response_id"))
	if err != nil {
		core.Error(w, r, err, "survey score")
		return
	}

	core.List(w, scores)
}

func (h *Handler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteResponse(r.Context(), chi.URLParam(r, "responseID")); err != nil {
		core.Error(w, r, err, "survey response")
		return
	}

	core.OK(w, DeleteResponse{Message: "survey response deleted"})
}

func (h *Handler) DeleteScore(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteScore(r.Context(), chi.URLParam(r, "scoreID")); err != nil {
		core.Error(w, r, err, "survey score")
		return
	}

	core.OK(w, DeleteResponse{Message: "survey score deleted"})
}
