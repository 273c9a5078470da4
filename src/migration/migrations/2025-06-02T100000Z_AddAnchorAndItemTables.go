package migrations

import (
	"context"
	"time"

	"github.com/Tnecniv1/mathbank-sub001/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddAnchorAndItemTables{})
}

type AddAnchorAndItemTables struct{}

func (m AddAnchorAndItemTables) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
}

func (m AddAnchorAndItemTables) Name() string {
	return "AddAnchorAndItemTables"
}

func (m AddAnchorAndItemTables) Description() string {
	return "Adds the anchor slug tables and the item bank"
}

func (m AddAnchorAndItemTables) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE complexity (
			id SERIAL PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		);
		CREATE TABLE subject (
			id SERIAL PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		);
		CREATE TABLE chapter (
			id SERIAL PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		);
		CREATE TABLE exercise (
			id SERIAL PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		);

		CREATE TABLE item (
			id SERIAL PRIMARY KEY,
			ref TEXT NOT NULL,
			statement TEXT NOT NULL DEFAULT '',
			solution TEXT NOT NULL DEFAULT '',
			usage_count INT NOT NULL DEFAULT 0,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE tag (
			id SERIAL PRIMARY KEY,
			text TEXT NOT NULL UNIQUE
		);

		CREATE TABLE item_tag (
			item_id INT NOT NULL REFERENCES item (id) ON DELETE CASCADE,
			tag_id INT NOT NULL REFERENCES tag (id) ON DELETE CASCADE,
			PRIMARY KEY (item_id, tag_id)
		);
	`)
	return err
}

func (m AddAnchorAndItemTables) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE item_tag;
		DROP TABLE tag;
		DROP TABLE item;
		DROP TABLE exercise;
		DROP TABLE chapter;
		DROP TABLE subject;
		DROP TABLE complexity;
	`)
	return err
}
