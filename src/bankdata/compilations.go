package bankdata

import (
	"context"
	"sort"

	"github.com/Tnecniv1/mathbank-sub001/src/anchors"
	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
	"github.com/google/uuid"
)

type ItemRef struct {
	ItemID int
	// Order is the caller's 1-based position for the item. Zero means
	// "use the array index".
	Order int
	// IncludeSolution defaults to true when nil.
	IncludeSolution *bool
}

type CreateCompilationInput struct {
	Title       string
	Description string
	Anchors     anchors.Set
	Items       []ItemRef
}

// CreateCompilation writes a new draft compilation and its ordered
// item list. The draft can be edited with ReplaceCompilationItems
// until it is finalized.
func CreateCompilation(ctx context.Context, dbConn db.ConnOrTx, in CreateCompilationInput) (uuid.UUID, error) {
	if in.Title == "" {
		return uuid.Nil, ValidationError{"compilation title is required"}
	}
	if len(in.Items) == 0 {
		return uuid.Nil, ValidationError{"compilation must contain at least one item"}
	}

	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return uuid.Nil, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	compID := uuid.New()
	_, err = tx.Exec(ctx,
		`
		INSERT INTO compilation (
			id, title, description,
			complexity_id, subject_id, chapter_id, exercise_id,
			finalized, date_created, date_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NOW(), NOW())
		`,
		compID, in.Title, in.Description,
		in.Anchors.ComplexityID, in.Anchors.SubjectID, in.Anchors.ChapterID, in.Anchors.ExerciseID,
	)
	if err != nil {
		return uuid.Nil, oops.New(err, "failed to insert compilation")
	}

	err = insertCompilationItems(ctx, tx, compID, in.Items)
	if err != nil {
		return uuid.Nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return uuid.Nil, oops.New(err, "failed to commit compilation")
	}

	return compID, nil
}

// ReplaceCompilationItems swaps out the compilation's entire item
// list. Positions are re-derived as a dense 1-based sequence no
// matter what the caller sent. Concurrent replaces against the same
// compilation are last-writer-wins; there is no version check.
func ReplaceCompilationItems(ctx context.Context, dbConn db.ConnOrTx, compID uuid.UUID, items []ItemRef) error {
	if len(items) == 0 {
		return ValidationError{"compilation must contain at least one item"}
	}

	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM compilation_item WHERE compilation_id = $1`,
		compID,
	)
	if err != nil {
		return oops.New(err, "failed to delete compilation items")
	}

	err = insertCompilationItems(ctx, tx, compID, items)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE compilation SET date_updated = NOW() WHERE id = $1`,
		compID,
	)
	if err != nil {
		return oops.New(err, "failed to touch compilation")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return oops.New(err, "failed to commit item replacement")
	}

	return nil
}

func insertCompilationItems(ctx context.Context, tx db.ConnOrTx, compID uuid.UUID, items []ItemRef) error {
	for _, entry := range orderItems(items) {
		include := true
		if entry.IncludeSolution != nil {
			include = *entry.IncludeSolution
		}
		_, err := tx.Exec(ctx,
			`
			INSERT INTO compilation_item (compilation_id, item_id, position, include_solution)
			VALUES ($1, $2, $3, $4)
			`,
			compID, entry.ItemID, entry.position, include,
		)
		if err != nil {
			return oops.New(err, "failed to insert compilation item")
		}
	}
	return nil
}

type orderedItemRef struct {
	ItemRef
	position int
}

// orderItems assigns dense 1-based positions. Explicit orders win
// over array indices, ties keep array order.
func orderItems(items []ItemRef) []orderedItemRef {
	ordered := make([]orderedItemRef, len(items))
	for i, entry := range items {
		sortKey := entry.Order
		if sortKey <= 0 {
			sortKey = i + 1
		}
		ordered[i] = orderedItemRef{ItemRef: entry, position: sortKey}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].position < ordered[j].position
	})
	for i := range ordered {
		ordered[i].position = i + 1
	}
	return ordered
}

func FetchCompilation(ctx context.Context, dbConn db.ConnOrTx, compID uuid.UUID) (*models.Compilation, error) {
	comp, err := db.QueryOne[models.Compilation](ctx, dbConn,
		`
		SELECT $columns
		FROM compilation
		WHERE id = $1
		`,
		compID,
	)
	if err != nil {
		if err == db.NotFound {
			return nil, err
		}
		return nil, oops.New(err, "failed to fetch compilation")
	}
	return comp, nil
}

func FetchCompilationItems(ctx context.Context, dbConn db.ConnOrTx, compID uuid.UUID) ([]*models.CompilationItem, error) {
	items, err := db.Query[models.CompilationItem](ctx, dbConn,
		`
		SELECT $columns
		FROM compilation_item
		WHERE compilation_id = $1
		ORDER BY position ASC
		`,
		compID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch compilation items")
	}
	return items, nil
}

type CompilationContent struct {
	Item models.Item            `db:"item"`
	Ref  models.CompilationItem `db:"ci"`
}

// FetchCompilationContents loads the compilation's items with their
// full text, in position order, ready for rendering.
func FetchCompilationContents(ctx context.Context, dbConn db.ConnOrTx, compID uuid.UUID) ([]*CompilationContent, error) {
	contents, err := db.Query[CompilationContent](ctx, dbConn,
		`
		SELECT $columns
		FROM compilation_item AS ci
			JOIN item ON item.id = ci.item_id
		WHERE ci.compilation_id = $1
		ORDER BY ci.position ASC
		`,
		compID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch compilation contents")
	}
	return contents, nil
}

// FinalizeCompilation marks the compilation finalized. Calling it
// again is a no-op.
func FinalizeCompilation(ctx context.Context, dbConn db.ConnOrTx, compID uuid.UUID) error {
	tag, err := dbConn.Exec(ctx,
		`UPDATE compilation SET finalized = TRUE, date_updated = NOW() WHERE id = $1`,
		compID,
	)
	if err != nil {
		return oops.New(err, "failed to finalize compilation")
	}
	if tag.RowsAffected() == 0 {
		return db.NotFound
	}
	return nil
}
