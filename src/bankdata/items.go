package bankdata

import (
	"context"

	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
)

type CreateItemInput struct {
	Ref       string
	Statement string
	Solution  string
	Tags      []string
}

// CreateItem inserts a new item and attaches its tags. Tags are
// created on first use; reusing an existing tag text attaches the
// existing row. The whole thing happens in one transaction.
func CreateItem(ctx context.Context, dbConn db.ConnOrTx, in CreateItemInput) (int, error) {
	if in.Ref == "" {
		return 0, ValidationError{"item ref is required"}
	}
	for _, tag := range in.Tags {
		if !models.ValidateTagText(tag) {
			return 0, ValidationError{"invalid tag text: " + tag}
		}
	}

	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return 0, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	itemID, err := db.QueryOneScalar[int](ctx, tx,
		`
		INSERT INTO item (ref, statement, solution, usage_count, date_created)
		VALUES ($1, $2, $3, 0, NOW())
		RETURNING id
		`,
		in.Ref, in.Statement, in.Solution,
	)
	if err != nil {
		return 0, oops.New(err, "failed to insert item")
	}

	for _, tagText := range in.Tags {
		if tagText == "" {
			continue
		}
		tagID, err := db.QueryOneScalar[int](ctx, tx,
			`
			INSERT INTO tag (text) VALUES ($1)
			ON CONFLICT (text) DO UPDATE SET text = EXCLUDED.text
			RETURNING id
			`,
			tagText,
		)
		if err != nil {
			return 0, oops.New(err, "failed to get or create tag")
		}
		_, err = tx.Exec(ctx,
			`
			INSERT INTO item_tag (item_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
			`,
			itemID, tagID,
		)
		if err != nil {
			return 0, oops.New(err, "failed to attach tag to item")
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, oops.New(err, "failed to commit item")
	}

	return itemID, nil
}

type ItemsQuery struct {
	IDs  []int
	Refs []string
	Tags []string

	Limit, Offset int
}

func FetchItems(ctx context.Context, dbConn db.ConnOrTx, q ItemsQuery) ([]*models.Item, error) {
	var qb db.QueryBuilder
	qb.Add(
		`
		SELECT $columns
		FROM item
		WHERE
			TRUE
		`,
	)
	if len(q.IDs) > 0 {
		qb.Add(`AND id = ANY ($?)`, q.IDs)
	}
	if len(q.Refs) > 0 {
		qb.Add(`AND ref = ANY ($?)`, q.Refs)
	}
	if len(q.Tags) > 0 {
		qb.Add(
			`
			AND id IN (
				SELECT item_tag.item_id
				FROM item_tag
					JOIN tag ON tag.id = item_tag.tag_id
				WHERE tag.text = ANY ($?)
			)
			`,
			q.Tags,
		)
	}
	qb.Add(`ORDER BY id ASC`)
	if q.Limit > 0 {
		qb.Add(`LIMIT $? OFFSET $?`, q.Limit, q.Offset)
	}

	items, err := db.Query[models.Item](ctx, dbConn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch items")
	}

	return items, nil
}

func FetchItem(ctx context.Context, dbConn db.ConnOrTx, q ItemsQuery) (*models.Item, error) {
	q.Limit = 1
	q.Offset = 0

	items, err := FetchItems(ctx, dbConn, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, db.NotFound
	}

	return items[0], nil
}

func FetchItemTags(ctx context.Context, dbConn db.ConnOrTx, itemID int) ([]*models.Tag, error) {
	tags, err := db.Query[models.Tag](ctx, dbConn,
		`
		SELECT $columns{tag}
		FROM tag
			JOIN item_tag ON item_tag.tag_id = tag.id
		WHERE item_tag.item_id = $1
		ORDER BY tag.text ASC
		`,
		itemID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch item tags")
	}
	return tags, nil
}
