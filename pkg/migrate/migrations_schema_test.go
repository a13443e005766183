package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vahanbazar/vahanbazar-backend/pkg/migrate"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestUsedListingsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_used_listings.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS used_listings",
		"status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'sold'))",
		"FOREIGN KEY (owner_id) REFERENCES users(id)",
		"CREATE INDEX IF NOT EXISTS used_listings_status_idx",
		"DROP TABLE IF EXISTS used_listings",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestUsedOrdersMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_used_orders.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS used_orders",
		"price_at_order INTEGER NOT NULL CHECK (price_at_order >= 0)",
		"CHECK (status IN ('pending', 'confirmed', 'cancelled', 'completed'))",
		"FOREIGN KEY (used_id) REFERENCES used_listings(id)",
		"FOREIGN KEY (buyer_id) REFERENCES users(id)",
		"DROP TABLE IF EXISTS used_orders",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestReviewsMigrationEnforcesOnePerUserPerBike(t *testing.T) {
	content := readMigration(t, "*_create_reviews.sql")

	checks := []string{
		"CHECK (rating BETWEEN 1 AND 5)",
		"CREATE UNIQUE INDEX IF NOT EXISTS reviews_bike_user_key ON reviews (bike_id, user_id)",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration file matching %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
