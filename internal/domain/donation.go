package domain

import "time"

// Represents a single posted food-donation listing.
// Descriptive fields (title, category, quantity, donor) are opaque to the
// matching engine and passed through untouched. Pickup and ExpiresAt are
// optional; a donation missing either is still ranked, with the affected
// derived metrics left unset.
type Donation struct {
	DonationID int
	Title      string
	Category   string
	Quantity   string
	Donor      string
	Pickup     *Coordinate
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}
