package bankdata

import (
	"context"

	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
	"github.com/google/uuid"
)

// RecordItemUsage appends one "used" row per item. The usage log is
// append-only; publishing the same compilation twice records twice.
func RecordItemUsage(ctx context.Context, dbConn db.ConnOrTx, compID uuid.UUID, itemIDs []int) error {
	if len(itemIDs) == 0 {
		return nil
	}

	_, err := dbConn.Exec(ctx,
		`
		INSERT INTO item_usage (item_id, compilation_id, status, date_created)
		SELECT unnest($1::INT[]), $2, $3, NOW()
		`,
		itemIDs, compID, models.ItemUsageStatusUsed,
	)
	if err != nil {
		return oops.New(err, "failed to record item usage")
	}

	return nil
}

// IncrementItemUsage bumps each item's usage counter. Callers treat
// failure as non-fatal telemetry: log it and move on.
func IncrementItemUsage(ctx context.Context, dbConn db.ConnOrTx, itemIDs []int) error {
	if len(itemIDs) == 0 {
		return nil
	}

	_, err := dbConn.Exec(ctx,
		`UPDATE item SET usage_count = usage_count + 1 WHERE id = ANY ($1)`,
		itemIDs,
	)
	if err != nil {
		return oops.New(err, "failed to increment item usage counters")
	}

	return nil
}
