package gormrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"
)

const migrationTable = "survivalcraft_migrations"

// ApplyMigrations runs each *.sql file in dir that is not yet recorded, in
// file name order, one transaction per file. It returns the versions it
// applied; on error the earlier ones stay applied.
func ApplyMigrations(ctx context.Context, db *gorm.DB, dir string) ([]string, error) {
	createTable := `CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
  version TEXT PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`
	if err := db.WithContext(ctx).Exec(createTable).Error; err != nil {
		return nil, fmt.Errorf("save migrations: create %s: %w", migrationTable, err)
	}

	versions, err := migrationVersions(dir)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, version := range versions {
		var count int64
		if err := db.WithContext(ctx).Table(migrationTable).Where("version = ?", version).Count(&count).Error; err != nil {
			return applied, fmt.Errorf("save migrations: check %s: %w", version, err)
		}
		if count > 0 {
			continue
		}
		if err := applyMigration(ctx, db, dir, version); err != nil {
			return applied, err
		}
		applied = append(applied, version)
	}
	return applied, nil
}

// migrationVersions lists the .sql file names in dir without the extension,
// sorted.
func migrationVersions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("save migrations: read %s: %w", dir, err)
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		versions = append(versions, strings.TrimSuffix(e.Name(), ".sql"))
	}
	slices.Sort(versions)
	return versions, nil
}

func applyMigration(ctx context.Context, db *gorm.DB, dir, version string) error {
	content, err := os.ReadFile(filepath.Join(dir, version+".sql"))
	if err != nil {
		return fmt.Errorf("save migrations: read %s: %w", version, err)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(string(content)).Error; err != nil {
			return fmt.Errorf("save migrations: apply %s: %w", version, err)
		}
		record := `INSERT INTO ` + migrationTable + `(version, applied_at) VALUES (?, ?)`
		if err := tx.Exec(record, version, time.Now()).Error; err != nil {
			return fmt.Errorf("save migrations: record %s: %w", version, err)
		}
		return nil
	})
}
