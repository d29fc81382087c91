package ports

import (
	"context"

	"donation-match-service/internal/domain"
)

// Port: a boundary for retrieving Donation entities from a data source.
type DonationRepository interface {
	// Return all donations currently available for matching.
	// Status filtering is the repository's job; the matching engine
	// receives only active records.
	ListActive(ctx context.Context) ([]*domain.Donation, error)
}
