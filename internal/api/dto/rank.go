package dto

import "donation-match-service/internal/domain"

type RankRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Strategy  string   `json:"strategy"`
}

// Derived metric fields are pointers so a degraded record serializes them as
// JSON nulls instead of misleading zeros.
type RankedDonationResponse struct {
	DonationResponse
	DistanceKm             *float64 `json:"distance_km"`
	TravelTimeMinutes      *float64 `json:"travel_time_minutes"`
	TimeUntilExpiryMinutes *float64 `json:"time_until_expiry_minutes"`
	UrgencyScore           *float64 `json:"urgency_score"`
	PriorityScore          *float64 `json:"priority_score"`
}

type RankResponse struct {
	Strategy  string                   `json:"strategy"`
	Donations []RankedDonationResponse `json:"donations"`
}

// FromRanked maps an engine result into its wire shape.
func FromRanked(r domain.RankedDonation) RankedDonationResponse {
	return RankedDonationResponse{
		DonationResponse:       FromDonation(r.Donation),
		DistanceKm:             r.DistanceKm,
		TravelTimeMinutes:      r.TravelTimeMinutes,
		TimeUntilExpiryMinutes: r.TimeUntilExpiryMinutes,
		UrgencyScore:           r.UrgencyScore,
		PriorityScore:          r.PriorityScore,
	}
}
