package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"donation-match-service/internal/domain"
	"donation-match-service/internal/platform/obs"
)

// Postgres-backed implementation of the DonationRepository port (pgx stdlib driver).
type PostgresDonationRepository struct{ DB *sql.DB }

func NewPostgresDonationRepository(db *sql.DB) *PostgresDonationRepository {
	return &PostgresDonationRepository{DB: db}
}

// Return all available donations stored in the database.
func (p *PostgresDonationRepository) ListActive(ctx context.Context) (_ []*domain.Donation, err error) {
	defer obs.Time(ctx, "donations.pg.ListActive")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres donation repository: DB is nil")
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
	WHERE status = $1
	ORDER BY donation_id;
	`
	rows, err := p.DB.QueryContext(ctx, query, StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list donations: query donations table: %w", err)
	}
	defer rows.Close()

	donations := make([]*domain.Donation, 0, 64)
	for rows.Next() {
		var (
			d         domain.Donation
			lat, lon  sql.NullFloat64
			expiresAt sql.NullTime
		)
		err := rows.Scan(&d.DonationID, &d.Title, &d.Category, &d.Quantity, &d.Donor, &lat, &lon, &expiresAt, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("list donations: scan row: %w", err)
		}

		if lat.Valid && lon.Valid {
			d.Pickup = &domain.Coordinate{Lat: lat.Float64, Lon: lon.Float64}
		}
		if expiresAt.Valid {
			t := expiresAt.Time
			d.ExpiresAt = &t
		}

		donations = append(donations, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donations: row iteration: %w", err)
	}

	return donations, nil
}
