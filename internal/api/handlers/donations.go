package handlers

import (
	"log"
	"net/http"

	"donation-match-service/internal/api/dto"
	"donation-match-service/internal/ports"
)

// DonationHandler exposes read-only donation retrieval endpoints.
type DonationHandler struct {
	Repo ports.DonationRepository
}

func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	donations, err := h.Repo.ListActive(r.Context())
	if err != nil {
		log.Printf("list donations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDonationsResponse{
		Donations: make([]dto.DonationResponse, 0, len(donations)),
	}
	for _, d := range donations {
		res.Donations = append(res.Donations, dto.FromDonation(d))
	}

	writeJSON(w, r, http.StatusOK, res)
}
