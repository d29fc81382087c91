package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"donation-match-service/internal/api/dto"
	"donation-match-service/internal/domain"
	"donation-match-service/internal/matching"
	"donation-match-service/internal/ports"
)

// RankHandler runs the matching engine over the active donation listing.
// It coordinates repository access and the pure ranking computation; the
// engine itself never fetches or renders anything.
type RankHandler struct {
	Repo   ports.DonationRepository
	Engine *matching.Engine
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// Rank scores and orders the active donations for a recipient location.
//
// The recipient coordinates are optional as a pair: when both are absent the
// listing passes through unscored (the dashboard's documented fallback before
// a device location is available). Exactly one coordinate present is a
// malformed request.
func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RankRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		writeError(w, r, http.StatusBadRequest, "latitude and longitude must be provided together")
		return
	}

	strategy, err := domain.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "strategy must be one of distance, urgency, balanced")
		return
	}

	var recipient *domain.Coordinate
	if req.Latitude != nil {
		recipient = &domain.Coordinate{Lat: *req.Latitude, Lon: *req.Longitude}
	}

	donations, err := h.Repo.ListActive(r.Context())
	if err != nil {
		log.Printf("rank donations: list failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	ranked, err := h.Engine.Rank(donations, recipient, strategy, now)
	if err != nil {
		if errors.Is(err, matching.ErrInvalidArgument) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("rank donations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RankResponse{
		Strategy:  string(strategy),
		Donations: make([]dto.RankedDonationResponse, 0, len(ranked)),
	}
	for _, rd := range ranked {
		res.Donations = append(res.Donations, dto.FromRanked(rd))
	}

	writeJSON(w, r, http.StatusOK, res)
}
