package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"donation-match-service/internal/domain"
)

// SQLite-backed implementation of the DonationRepository port.
type SqliteDonationRepository struct{ DB *sql.DB }

func NewSqliteDonationRepository(db *sql.DB) *SqliteDonationRepository {
	return &SqliteDonationRepository{DB: db}
}

// Return all available donations stored in the database.
func (s *SqliteDonationRepository) ListActive(ctx context.Context) ([]*domain.Donation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite donation repository: DB is nil")
	}

	query := `
	SELECT
		donation_id,
		title,
		category,
		quantity,
		donor,
		lat,
		lon,
		expires_at,
		created_at
	FROM donations
	WHERE status = ?
	ORDER BY donation_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list donations: query donations table: %w", err)
	}
	defer rows.Close()

	donations := make([]*domain.Donation, 0, 64)
	for rows.Next() {
		var (
			d         domain.Donation
			lat, lon  sql.NullFloat64
			expiresAt sql.NullString
			createdAt string
		)
		err := rows.Scan(&d.DonationID, &d.Title, &d.Category, &d.Quantity, &d.Donor, &lat, &lon, &expiresAt, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("list donations: scan row: %w", err)
		}

		// Coordinates are only meaningful as a pair.
		if lat.Valid && lon.Valid {
			d.Pickup = &domain.Coordinate{Lat: lat.Float64, Lon: lon.Float64}
		}

		if expiresAt.Valid {
			t, err := time.Parse(time.RFC3339, expiresAt.String)
			if err != nil {
				return nil, fmt.Errorf("list donations: parse expires_at for donation_id=%d: %w", d.DonationID, err)
			}
			d.ExpiresAt = &t
		}

		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list donations: parse created_at for donation_id=%d: %w", d.DonationID, err)
		}
		d.CreatedAt = t

		donations = append(donations, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donations: row iteration: %w", err)
	}

	return donations, nil
}
