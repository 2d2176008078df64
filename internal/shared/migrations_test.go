package shared

import (
	"testing"
)

func TestMigrationRunner(t *testing.T) {
	t.Run("parseMigrationName", func(t *testing.T) {
		tt := []struct {
			name      string
			version   int
			direction string
			ok        bool
		}{
			{name: "0000_create_slots_up.sql", version: 0, direction: "up", ok: true},
			{name: "0012_add_index_down.sql", version: 12, direction: "down", ok: true},
			{name: "0001_create_slots.sql", ok: false},
			{name: "README.md", ok: false},
			{name: "abc_up.sql", ok: false},
		}

		for _, tc := range tt {
			version, direction, ok := parseMigrationName(tc.name)
			if ok != tc.ok {
				t.Errorf("parseMigrationName(%q) ok = %v, want %v", tc.name, ok, tc.ok)
				continue
			}
			if ok && (version != tc.version || direction != tc.direction) {
				t.Errorf("parseMigrationName(%q) = (%d, %s), want (%d, %s)", tc.name, version, direction, tc.version, tc.direction)
			}
		}
	})

	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}

		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Errorf("migrations not sorted: version %d comes after %d", migrations[i].Version, migrations[i-1].Version)
			}
		}
	})

	t.Run("RunMigrations And Rollback", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()
		ConfigureDatabase(db, 1, 1)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		if _, err := db.Exec("SELECT 1 FROM slots LIMIT 1"); err != nil {
			t.Errorf("slots table should exist after migrations: %v", err)
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback migration: %v", err)
		}

		if _, err := db.Exec("SELECT 1 FROM slots LIMIT 1"); err == nil {
			t.Error("slots table should be dropped after rollback")
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("expected error when nothing is left to roll back")
		}
	})

	t.Run("Idempotent Migrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()
		ConfigureDatabase(db, 1, 1)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations first time: %v", err)
		}

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations second time: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to query schema_migrations: %v", err)
		}

		migrations, _ := loadMigrations()
		if count != len(migrations) {
			t.Errorf("expected %d migrations to be applied, got %d", len(migrations), count)
		}
	})
}

func TestStripComments(t *testing.T) {
	got := stripComments("-- header\nCREATE TABLE x (\n  id INTEGER -- pk\n)")
	want := "CREATE TABLE x (\nid INTEGER\n)"
	if got != want {
		t.Errorf("stripComments() = %q, want %q", got, want)
	}
}
