package migrations

import (
	"context"
	"time"

	"github.com/Tnecniv1/mathbank-sub001/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddPublicationTables{})
}

type AddPublicationTables struct{}

func (m AddPublicationTables) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC))
}

func (m AddPublicationTables) Name() string {
	return "AddPublicationTables"
}

func (m AddPublicationTables) Description() string {
	return "Adds publications, PDF artifacts, and the item usage log"
}

func (m AddPublicationTables) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE publication (
			id UUID PRIMARY KEY,
			ref TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			complexity_id INT REFERENCES complexity (id),
			subject_id INT REFERENCES subject (id),
			chapter_id INT REFERENCES chapter (id),
			exercise_id INT REFERENCES exercise (id),
			status TEXT NOT NULL DEFAULT 'draft',
			uploaded_pdf_path TEXT,
			published_pdf_path TEXT,
			published_at TIMESTAMP WITH TIME ZONE,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE INDEX publication_published_at ON publication (published_at DESC)
			WHERE status = 'published';

		CREATE TABLE pdf_artifact (
			id UUID PRIMARY KEY,
			compilation_id UUID NOT NULL REFERENCES compilation (id),
			storage_path TEXT NOT NULL,
			published BOOLEAN NOT NULL DEFAULT FALSE,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE item_usage (
			id SERIAL PRIMARY KEY,
			item_id INT NOT NULL REFERENCES item (id),
			compilation_id UUID NOT NULL REFERENCES compilation (id),
			status TEXT NOT NULL,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
	`)
	return err
}

func (m AddPublicationTables) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE item_usage;
		DROP TABLE pdf_artifact;
		DROP TABLE publication;
	`)
	return err
}
