// AngelaMos | 2026
// handler.go

package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
	cookie    config.SessionConfig
}

func NewHandler(service *Service, cookie config.SessionConfig) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
		cookie:    cookie,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/google-session", h.GoogleSession)
		r.Post("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
		})
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		core.Error(w, r, err, "user")
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(w, core.UnauthorizedError("invalid email or password"))
			return
		}
		core.Error(w, r, err, "user")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GoogleSession(w http.ResponseWriter, r *http.Request) {
	var req GoogleSessionRequest
	if appErr := core.Bind(r, h.validator, &req); appErr != nil {
		core.JSONError(w, appErr)
		return
	}

	resp, err := h.service.GoogleSession(r.Context(), req.SessionID)
	if err != nil {
		core.Error(w, r, err, "session")
		return
	}

	http.SetCookie(w, h.sessionCookie(resp.SessionToken, int(h.cookie.TTL.Seconds())))
	core.OK(w, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	credential := middleware.ExtractCredential(r, h.cookie.CookieName)

	if err := h.service.Logout(r.Context(), credential); err != nil {
		core.Error(w, r, err, "session")
		return
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	core.OK(w, LogoutResponse{Message: "logged out"})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		core.Error(w, r, err, "user")
		return
	}

	core.OK(w, user)
}

// sessionCookie is cross-site so the separately hosted frontend can send
// it; browsers only accept SameSite=None on Secure cookies, so local
// plain-HTTP setups fall back to Lax.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteNoneMode
	if !h.cookie.CookieSecure {
		sameSite = http.SameSiteLaxMode
	}

	return &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: sameSite,
	}
}
