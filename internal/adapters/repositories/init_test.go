package repositories

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "donations.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestLoadSeedsAppliesExpiryDefault(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	path := writeSeedFile(t, `[
		{"donation_id": 1, "title": "Bread", "lat": 33.4, "lon": -112.0},
		{"donation_id": 2, "title": "Milk", "expires_at": "2026-08-30T08:00:00Z"}
	]`)

	seeds, err := LoadSeeds(path, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("expected 2 seeds, got %d", len(seeds))
	}

	// Missing expiry defaults to now + 24h at the data boundary.
	if seeds[0].ExpiresAt == nil || *seeds[0].ExpiresAt != "2026-08-30T12:00:00Z" {
		t.Fatalf("expiry default = %v, want 2026-08-30T12:00:00Z", seeds[0].ExpiresAt)
	}
	if *seeds[1].ExpiresAt != "2026-08-30T08:00:00Z" {
		t.Fatalf("explicit expiry overwritten: %v", *seeds[1].ExpiresAt)
	}

	if seeds[0].Status != StatusAvailable || seeds[1].Status != StatusAvailable {
		t.Fatalf("status must default to %q", StatusAvailable)
	}
}

func TestLoadSeedsRejectsBadRows(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		content string
	}{
		{"non-positive id", `[{"donation_id": 0, "title": "Bread"}]`},
		{"empty title", `[{"donation_id": 1, "title": "  "}]`},
		{"lat without lon", `[{"donation_id": 1, "title": "Bread", "lat": 33.4}]`},
		{"bad expiry format", `[{"donation_id": 1, "title": "Bread", "expires_at": "tomorrow"}]`},
		{"not json", `donation_id: 1`},
	}

	for _, tc := range cases {
		path := writeSeedFile(t, tc.content)
		if _, err := LoadSeeds(path, now); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadSeedsMissingFile(t *testing.T) {
	if _, err := LoadSeeds(filepath.Join(t.TempDir(), "absent.json"), time.Now()); err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}
