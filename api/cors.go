package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// CORS lets the dashboard front-end call the api from another origin
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// RateLimit caps each client IP at perMinute requests
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	return httprate.LimitByIP(perMinute, time.Minute)
}
