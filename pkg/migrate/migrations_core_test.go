package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carriedev/hazellab-backend/pkg/migrate"
)

func TestCoreMigrationContainsSchemas(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_core_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no core migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS usuarios",
		"CREATE TABLE IF NOT EXISTS categorias",
		"CREATE TABLE IF NOT EXISTS productos",
		"CREATE TABLE IF NOT EXISTS items_carrito",
		"CREATE TABLE IF NOT EXISTS blogs",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_usuarios_email",
		"REFERENCES categorias (id)",
		"REFERENCES usuarios (id) ON DELETE CASCADE",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
