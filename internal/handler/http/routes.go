package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-vinted/internal/app"
	"github.com/MKhiriev/go-vinted/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withRecoverer)
	router.Use(cors.Handler(h.corsOptions()))

	router.Get("/", h.home)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/user/signup", h.signUp)
		r.Get("/user/login", h.loginFromQuery)
		r.Post("/user/login", h.loginFromBody)

		r.Get("/offer", h.getOffers)
		r.Get("/offer/{id}", h.getOffer)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/user/logout", h.logout)

		r.Post("/offer/publish", h.publishOffer)
		r.Put("/offer/modify/{id}", h.modifyOffer)
		r.Delete("/offer/delete/{id}", h.deleteOffer)
	})

	router.NotFound(endpointNotFound)
	router.MethodNotAllowed(endpointNotFound)

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := []string{"*"}
	if h.frontendURL != "" {
		origins = []string{h.frontendURL}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: h.frontendURL != "",
		MaxAge:           300,
	}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgHello, http.StatusOK)
}
