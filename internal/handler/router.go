package handler

import (
	"net/http"

	"resume-filter/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	resumeHandler *ResumeHandler,
	healthHandler *HealthHandler,
	logger domain.Logger,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger), Recoverer(logger))

	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthHandler.Ready).Methods(http.MethodGet)

	router.HandleFunc("/upload", resumeHandler.Upload).Methods(http.MethodPost)
	router.HandleFunc("/resumes", resumeHandler.List).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
