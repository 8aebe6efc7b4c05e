// AngelaMos | 2026
// handler.go

package export

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
)

type Handler struct {
	exporter *Exporter
}

func NewHandler(exporter *Exporter) *Handler {
	return &Handler{exporter: exporter}
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.With(
		authenticator,
		middleware.RequireOperation(policy.OpExportData),
	).Get("/admin/export-data", h.Export)
}

// Export renders the workbook into a temp file, streams it as an
// attachment, then removes the file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	tmp, err := os.CreateTemp("", "export_als_*.xlsx")
	if err != nil {
		core.Error(w, r, fmt.Errorf("create export file: %w", err), "export")
		return
	}
	defer func() {
		_ = tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil {
			slog.WarnContext(r.Context(), "remove export file",
				"path", tmp.Name(),
				"error", err,
			)
		}
	}()

	if err := h.exporter.Write(r.Context(), tmp); err != nil {
		core.Error(w, r, fmt.Errorf("export data: %w", err), "export")
		return
	}

	size, err := tmp.Seek(0, io.SeekCurrent)
	if err != nil {
		core.Error(w, r, fmt.Errorf("size export file: %w", err), "export")
		return
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		core.Error(w, r, fmt.Errorf("rewind export file: %w", err), "export")
		return
	}

	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, h.exporter.FileName()))
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, tmp); err != nil {
		slog.WarnContext(r.Context(), "stream export", "error", err)
	}
}
