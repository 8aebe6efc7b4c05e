// AngelaMos | 2026
// handler.go

package quality

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

// RegisterRoutes mounts quality records under /quality and their
// incidents under /incidents.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/quality", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.CreateRecord)
		r.Get("/", h.ListRecords)
		r.Delete("/{recordID}", h.DeleteRecord)
	})

	r.Route("/incidents", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.CreateIncident)
		r.Get("/", h.ListIncidents)
		r.Delete("/{incidentID}", h.DeleteIncident)
	})
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req CreateRecordRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	rec, err := h.service.CreateRecord(r.Context(), req)
	if err != nil {
		core.Error(w, r, err, "account")
		return
	}

	core.Created(w, rec)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListRecords(r.Context(), r.URL.Query().Get("compte_id"))
	if err != nil {
		core.Error(w, r, err, "quality record")
		return
	}

	core.List(w, records)
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRecord(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		core.Error(w, r, err, "quality record")
		return
	}

	core.OK(w, DeleteResponse{Message: "quality record and incidents deleted"})
}

func (h *Handler) CreateIncident(w http.ResponseWriter, r *http.Request) {
	var req CreateIncidentRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	inc, err := h.service.CreateIncident(r.Context(), req)
	if err != nil {
		core.Error(w, r, err, "quality record")
		return
	}

	core.Created(w, inc)
}

func (h *Handler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.service.ListIncidents(r.Context(), r.URL.Query().Get("quality_record_id"))
	if err != nil {
		core.Error(w, r, err, "incident")
		return
	}

	core.List(w, incidents)
}

func (h *Handler) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteIncident(r.Context(), chi.URLParam(r, "incidentID")); err != nil {
		core.Error(w, r, err, "incident")
		return
	}

	core.OK(w, DeleteResponse{Message: "incident deleted"})
}
