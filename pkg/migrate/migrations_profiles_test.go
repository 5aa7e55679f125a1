package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/womencards/womencards-backend/pkg/migrate"
)

func TestProfilesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_profiles.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no profiles migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS profiles",
		"CREATE UNIQUE INDEX IF NOT EXISTS profiles_username_key ON profiles (username)",
		"CHECK (char_length(bio) <= 150)",
		"CHECK (username = lower(username))",
		"DROP TABLE IF EXISTS profiles",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirIsValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
