package migrations

import (
	"context"
	"time"

	"github.com/Tnecniv1/mathbank-sub001/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddUsersAndSessions{})
}

type AddUsersAndSessions struct{}

func (m AddUsersAndSessions) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2025, 6, 2, 10, 45, 0, 0, time.UTC))
}

func (m AddUsersAndSessions) Name() string {
	return "AddUsersAndSessions"
}

func (m AddUsersAndSessions) Description() string {
	return "Adds user accounts and server-side sessions"
}

func (m AddUsersAndSessions) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(150) NOT NULL UNIQUE,
			password VARCHAR(256) NOT NULL,
			date_joined TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			last_login TIMESTAMP WITH TIME ZONE
		);

		CREATE TABLE session (
			id VARCHAR(40) PRIMARY KEY,
			username VARCHAR(150) NOT NULL,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL
		);
	`)
	return err
}

func (m AddUsersAndSessions) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE session;
		DROP TABLE users;
	`)
	return err
}
