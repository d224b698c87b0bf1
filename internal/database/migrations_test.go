package database

import (
	"path/filepath"
	"testing"
)

// TestMigrationSetsMatchAcrossDialects guards against a migration being
// added for one store but forgotten for the others. The DDL differs per
// dialect, so each subdirectory must carry the same file set.
func TestMigrationSetsMatchAcrossDialects(t *testing.T) {
	dialects := []Dialect{
		NewSQLiteDialect(),
		NewPostgresDialect(),
		NewMySQLDialect(),
	}

	reference := migrationNames(t, dialects[0])
	if len(reference) == 0 {
		t.Fatalf("no migration files found for %s", dialects[0].MigrationsSubdir())
	}

	for _, dialect := range dialects[1:] {
		names := migrationNames(t, dialect)
		if len(names) != len(reference) {
			t.Fatalf("%s has %d migrations, %s has %d",
				dialects[0].MigrationsSubdir(), len(reference),
				dialect.MigrationsSubdir(), len(names))
		}
		for i, name := range reference {
			if names[i] != name {
				t.Errorf("%s migration %d = %s, want %s",
					dialect.MigrationsSubdir(), i, names[i], name)
			}
		}
	}
}

func migrationNames(t *testing.T, dialect Dialect) []string {
	t.Helper()

	files, err := filepath.Glob(filepath.Join("../../migrations", dialect.MigrationsSubdir(), "*.sql"))
	if err != nil {
		t.Fatalf("failed to glob migrations for %s: %v", dialect.MigrationsSubdir(), err)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, filepath.Base(file))
	}
	return names
}
