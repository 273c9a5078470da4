package migrations

import (
	"context"
	"time"

	"github.com/Tnecniv1/mathbank-sub001/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddCompilationTables{})
}

type AddCompilationTables struct{}

func (m AddCompilationTables) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2025, 6, 2, 10, 15, 0, 0, time.UTC))
}

func (m AddCompilationTables) Name() string {
	return "AddCompilationTables"
}

func (m AddCompilationTables) Description() string {
	return "Adds compilations and their ordered item lists"
}

func (m AddCompilationTables) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE compilation (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			complexity_id INT REFERENCES complexity (id),
			subject_id INT REFERENCES subject (id),
			chapter_id INT REFERENCES chapter (id),
			exercise_id INT REFERENCES exercise (id),
			finalized BOOLEAN NOT NULL DEFAULT FALSE,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			date_updated TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE compilation_item (
			compilation_id UUID NOT NULL REFERENCES compilation (id) ON DELETE CASCADE,
			item_id INT NOT NULL REFERENCES item (id),
			position INT NOT NULL,
			include_solution BOOLEAN NOT NULL DEFAULT TRUE,
			PRIMARY KEY (compilation_id, item_id),
			UNIQUE (compilation_id, position)
		);
	`)
	return err
}

func (m AddCompilationTables) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE compilation_item;
		DROP TABLE compilation;
	`)
	return err
}
