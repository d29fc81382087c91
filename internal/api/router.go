package api

import (
	"net/http"

	"donation-match-service/internal/api/handlers"
	"donation-match-service/internal/matching"
	"donation-match-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.DonationRepository, engine *matching.Engine) http.Handler {
	mux := http.NewServeMux()

	donationHandler := &handlers.DonationHandler{Repo: repo}
	rankHandler := &handlers.RankHandler{
		Repo:   repo,
		Engine: engine,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/donations", donationHandler.List)
	mux.HandleFunc("/rank", rankHandler.Rank)

	return loggingMiddleware(mux)
}
