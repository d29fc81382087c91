package dto

import (
	"time"

	"donation-match-service/internal/domain"
)

type DonationResponse struct {
	DonationID int        `json:"donation_id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Quantity   string     `json:"quantity"`
	Donor      string     `json:"donor"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
}

// FromDonation flattens a domain donation into its wire shape.
func FromDonation(d *domain.Donation) DonationResponse {
	res := DonationResponse{
		DonationID: d.DonationID,
		Title:      d.Title,
		Category:   d.Category,
		Quantity:   d.Quantity,
		Donor:      d.Donor,
		ExpiresAt:  d.ExpiresAt,
		CreatedAt:  d.CreatedAt,
	}
	if d.Pickup != nil {
		lat, lon := d.Pickup.Lat, d.Pickup.Lon
		res.Latitude = &lat
		res.Longitude = &lon
	}
	return res
}
