package models

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID          int       `db:"id"`
	Ref         string    `db:"ref"`
	Statement   string    `db:"statement"`
	Solution    string    `db:"solution"`
	UsageCount  int       `db:"usage_count"`
	DateCreated time.Time `db:"date_created"`
}

// ItemUsage rows are append-only. Updating or deleting them would
// falsify the usage history, so nothing in the schema allows it.
type ItemUsage struct {
	ID            int       `db:"id"`
	ItemID        int       `db:"item_id"`
	CompilationID uuid.UUID `db:"compilation_id"`
	Status        string    `db:"status"`
	DateCreated   time.Time `db:"date_created"`
}

const ItemUsageStatusUsed = "used"
