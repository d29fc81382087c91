package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Donation status stored by the dashboard layer. The repositories only ever
// surface available donations to the matching engine.
const StatusAvailable = "available"

// Upstream default applied at seed time when a listing has no expiry.
const defaultExpiryWindow = 24 * time.Hour

type DonationSeed struct {
	DonationID int      `json:"donation_id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Quantity   string   `json:"quantity"`
	Donor      string   `json:"donor"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	ExpiresAt  *string  `json:"expires_at"`
	Status     string   `json:"status"`
}

// Initialize the SQLite database schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS donations (
		donation_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		quantity TEXT NOT NULL DEFAULT '',
		donor TEXT NOT NULL DEFAULT '',
		lat REAL,
		lon REAL,
		expires_at TEXT,
		created_at TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'available'
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create donations table: %w", err)
	}

	indexQuery := `
	CREATE INDEX IF NOT EXISTS idx_donations_status
	ON donations(status);
	`
	if _, err := db.Exec(indexQuery); err != nil {
		return fmt.Errorf("init schema: create status index: %w", err)
	}

	return nil
}

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS donations (
		donation_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		quantity TEXT NOT NULL DEFAULT '',
		donor TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		expires_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'available'
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create donations table: %w", err)
	}

	indexQuery := `
	CREATE INDEX IF NOT EXISTS idx_donations_status
	ON donations(status);
	`
	if _, err := db.Exec(indexQuery); err != nil {
		return fmt.Errorf("init schema: create status index: %w", err)
	}

	return nil
}

// Populate the SQLite database with donation data from a JSON file.
func SeedSqliteFromJSON(db *sql.DB, jsonPath string, now time.Time) error {
	seeds, err := LoadSeeds(jsonPath, now)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed donations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO donations (
		donation_id,
		title,
		category,
		quantity,
		donor,
		lat,
		lon,
		expires_at,
		created_at,
		status
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed donations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range seeds {
		_, err := stmt.Exec(
			s.DonationID, s.Title, s.Category, s.Quantity, s.Donor,
			s.Lat, s.Lon, s.ExpiresAt, now.UTC().Format(time.RFC3339), s.Status,
		)
		if err != nil {
			return fmt.Errorf("seed donations: insert donation_id=%d: %w", s.DonationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed donations: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with donation data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string, now time.Time) error {
	seeds, err := LoadSeeds(jsonPath, now)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed donations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO donations (
		donation_id,
		title,
		category,
		quantity,
		donor,
		lat,
		lon,
		expires_at,
		created_at,
		status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (donation_id) DO UPDATE
	SET title = EXCLUDED.title,
		category = EXCLUDED.category,
		quantity = EXCLUDED.quantity,
		donor = EXCLUDED.donor,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		expires_at = EXCLUDED.expires_at,
		status = EXCLUDED.status;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed donations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range seeds {
		_, err := stmt.Exec(
			s.DonationID, s.Title, s.Category, s.Quantity, s.Donor,
			s.Lat, s.Lon, s.ExpiresAt, now.UTC(), s.Status,
		)
		if err != nil {
			return fmt.Errorf("seed donations: insert donation_id=%d: %w", s.DonationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed donations: commit tx: %w", err)
	}

	return nil
}

// LoadSeeds reads and validates donation seed rows.
//
// Rows without an expiry receive the upstream "now + 24h" default here, at
// the data boundary; the matching engine itself treats a missing expiry as
// unresolvable and never invents one.
func LoadSeeds(jsonPath string, now time.Time) ([]DonationSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed donations: read %q: %w", jsonPath, err)
	}

	var data []DonationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed donations: parse json: %w", err)
	}

	seeds := make([]DonationSeed, 0, len(data))
	for i, item := range data {
		if item.DonationID <= 0 {
			return nil, fmt.Errorf("seed donations: invalid donation_id at index %d: %d", i+1, item.DonationID)
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			return nil, fmt.Errorf("seed donations: item at index %d: title cannot be empty", i+1)
		}
		item.Title = title

		// Half-set coordinates are as unusable as none at all.
		if (item.Lat == nil) != (item.Lon == nil) {
			return nil, fmt.Errorf("seed donations: donation_id=%d: lat and lon must be set together", item.DonationID)
		}

		if item.ExpiresAt != nil {
			if _, err := time.Parse(time.RFC3339, *item.ExpiresAt); err != nil {
				return nil, fmt.Errorf("seed donations: donation_id=%d: parse expires_at: %w", item.DonationID, err)
			}
		} else {
			def := now.Add(defaultExpiryWindow).UTC().Format(time.RFC3339)
			item.ExpiresAt = &def
		}

		if item.Status == "" {
			item.Status = StatusAvailable
		}

		seeds = append(seeds, item)
	}

	return seeds, nil
}
