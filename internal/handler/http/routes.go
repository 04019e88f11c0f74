package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Requests pass withTraceID, withErrorHandling,
// auth and withLogging, outermost first. Compression sits outside
// withErrorHandling, so withLogging sees uncompressed bodies.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.CleanPath)
	router.Use(h.withTraceID)
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(h.withErrorHandling)
	router.Use(h.auth)
	router.Use(h.withLogging)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrRouteNotFound, nil)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrMethodNotAllowed, nil)
	})

	router.Get("/health", h.health)
	router.Get("/health/detailed", h.detailedHealth)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/docs/openapi.json", h.openAPI)

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/department/{department}", h.listUsersByDepartment)
		r.Get("/email/{email}", h.getUserByEmail)

		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	return router
}
