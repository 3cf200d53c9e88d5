package rest

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi"

	"github.com/furnimed/catalog-admin/internal/auth"
	"github.com/furnimed/catalog-admin/internal/employee"
	"github.com/furnimed/catalog-admin/internal/medical"
	"github.com/furnimed/catalog-admin/internal/product"
	"github.com/furnimed/catalog-admin/internal/transport/middleware"
	"github.com/furnimed/catalog-admin/internal/transport/swagger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	Products     *product.Handler
	Employees    *employee.Handler
	MedicalGoods *medical.Handler
	Medicines    *medical.Handler
}

// RegisterAllRoutes wires the route table.
//
// Gating policy: products and employees are admin-only end to end. The two
// medical catalogs are readable without a session (the storefront browses
// them) while their mutations stay behind the admin gate.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins, staticDir string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	// Auth routes live outside the /api prefix, matching the admin UI.
	router.Post("/register", h.Auth.Register)
	router.Post("/login", h.Auth.Login)
	router.Get("/logout", h.Auth.Logout)
	router.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireSession)
		r.Get("/protected", h.Auth.Protected)
	})

	router.Route("/api", func(r chi.Router) {
		r.Group(func(ar chi.Router) {
			ar.Use(h.Auth.RequireSession)
			ar.Use(h.Auth.RequireAdmin)

			ar.Route("/products", func(pr chi.Router) {
				pr.Get("/", h.Products.List)
				pr.Post("/", h.Products.Create)
				pr.Get("/{id}", h.Products.Get)
				pr.Put("/{id}", h.Products.Update)
				pr.Delete("/{id}", h.Products.Delete)
			})

			ar.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employees.List)
				er.Post("/", h.Employees.Create)
				er.Get("/{id}", h.Employees.Get)
				er.Put("/{id}", h.Employees.Update)
				er.Delete("/{id}", h.Employees.Delete)
			})
		})

		mountMedical(r, "/medical-goods", h.MedicalGoods, h.Auth)
		mountMedical(r, "/medicines", h.Medicines, h.Auth)
	})

	// SPA fallback: any unmatched path serves the admin UI entry page.
	router.NotFound(spaFallback(staticDir))
}

func mountMedical(r chi.Router, path string, h *medical.Handler, authHandler *auth.Handler) {
	r.Route(path, func(mr chi.Router) {
		mr.Get("/", h.List)
		mr.Get("/{id}", h.Get)

		mr.Group(func(gr chi.Router) {
			gr.Use(authHandler.RequireSession)
			gr.Use(authHandler.RequireAdmin)
			gr.Post("/", h.Create)
			gr.Put("/{id}", h.Update)
			gr.Delete("/{id}", h.Delete)
		})
	})
}

func spaFallback(staticDir string) http.HandlerFunc {
	index := filepath.Join(staticDir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(index); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
