package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/dpolyakov/planmate/internal/server/handlers"
	"github.com/dpolyakov/planmate/internal/server/middleware"
	"github.com/dpolyakov/planmate/internal/server/store"
)

// NewRouter wires all endpoints under /api. Auth and health are public;
// everything else sits behind the bearer-token middleware.
func NewRouter(s *store.Store, jwtSecret []byte, tokenTTL time.Duration, corsOrigin string) http.Handler {
	r := mux.NewRouter()

	authHandler := handlers.NewAuthHandler(s, jwtSecret, tokenTTL)
	projectHandler := handlers.NewProjectHandler(s)
	taskHandler := handlers.NewTaskHandler(s)

	r.HandleFunc("/api/health", handlers.Health).Methods("GET")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.Auth(jwtSecret))

	protected.HandleFunc("/projects", projectHandler.List).Methods("GET")
	protected.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	protected.HandleFunc("/projects/{id:[0-9]+}", projectHandler.Get).Methods("GET")
	protected.HandleFunc("/projects/{id:[0-9]+}", projectHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/projects/{id:[0-9]+}/tasks", taskHandler.Create).Methods("POST")
	protected.HandleFunc("/tasks/{id:[0-9]+}", taskHandler.Update).Methods("PUT")
	protected.HandleFunc("/tasks/{id:[0-9]+}", taskHandler.Delete).Methods("DELETE")

	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if corsOrigin != "" {
		allowedOrigins = append(allowedOrigins, corsOrigin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
