package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/transport"
	"github.com/furnimed/catalog-admin/internal/user"
	"github.com/furnimed/catalog-admin/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service    *Service
	cookieName string
	sessionTTL time.Duration
}

func NewHandler(svc *Service, cookieName string, sessionTTL time.Duration) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		cookieName:  cookieName,
		sessionTTL:  sessionTTL,
	}
}

// Register handles POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Register(dto); err != nil {
		h.Logger.Error("registration failed", "error", err)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]string{"message": "registration successful"})
}

// Login handles POST /login. On success the session identifier travels back
// in an HttpOnly cookie; the body carries only username and role.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.Service.Login(r.Context(), dto)
	if err != nil {
		h.Logger.Warn("login failed", "error", err)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Message:  "login successful",
		Username: session.Username,
		Role:     session.Role,
	})
}

// Logout handles GET /logout. The cookie is expired even when no session
// exists; only a failing store yields a 500.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.Service.Logout(r.Context(), cookie.Value); err != nil {
			h.Logger.Error("logout failed", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "could not log out")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Protected handles GET /protected: a probe for the current session.
func (h *Handler) Protected(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, internal.ErrSessionRequired.Message)
		return
	}

	h.WriteJSON(w, http.StatusOK, WhoAmIResponse{
		UserID:   session.UserID,
		Username: session.Username,
		Role:     session.Role,
	})
}

// RequireSession rejects requests without a live session and stores the
// session in the request context for downstream handlers.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cookieName)
		if err != nil || cookie.Value == "" {
			h.WriteError(w, http.StatusUnauthorized, internal.ErrSessionRequired.Message)
			return
		}

		session, err := h.Service.Session(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, ErrSessionNotFound) {
				h.Logger.Error("session lookup failed", "error", err)
			}
			h.WriteError(w, http.StatusUnauthorized, internal.ErrSessionRequired.Message)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithSession(r.Context(), session)))
	})
}

// RequireAdmin enforces the admin role. It must run after RequireSession.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			h.WriteError(w, http.StatusUnauthorized, internal.ErrSessionRequired.Message)
			return
		}
		if session.Role != user.RoleAdmin {
			h.Logger.Warn("admin route denied", "user_id", session.UserID, "role", session.Role)
			h.WriteError(w, http.StatusForbidden, internal.ErrAdminRequired.Message)
			return
		}
		next.ServeHTTP(w, r)
	})
}
