package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MentorMountain/blog/app/auth"
	"github.com/MentorMountain/blog/app/config"
	"github.com/MentorMountain/blog/app/controllers"
	"github.com/MentorMountain/blog/app/middleware"
	"github.com/MentorMountain/blog/app/repositories"
	"github.com/MentorMountain/blog/app/services"
)

// SetupRoutes assembles the router: logging, recovery and the CORS gate
// globally, then token verification on the blog endpoints only. Health
// stays open.
func SetupRoutes(cfg config.Config, verifier auth.TokenVerifier, repo repositories.PostRepository) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(cfg.AllowedOrigins()))

	blogService := services.NewBlogService(repo)
	blogController := controllers.NewBlogController(blogService)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/health", blogController.Health).Methods("GET")

	blog := api.PathPrefix("/blog").Subrouter()
	blog.Use(middleware.AccessGate(verifier))
	blog.HandleFunc("", blogController.Index).Methods("GET")
	blog.HandleFunc("", blogController.Create).Methods("POST")

	// Preflight requests must match a route for the middleware chain to
	// run; the CORS gate answers them before this handler is reached.
	router.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
			return
		}
		http.NotFound(w, r)
	})

	return router
}

// StartServer starts the HTTP server on the specified address with the
// given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
