package anchors

import (
	"context"
	"errors"

	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
)

// The four anchor tables, in path order. Every storage path and slug
// path lists present anchors in this order.
const (
	TableComplexity = "complexity"
	TableSubject    = "subject"
	TableChapter    = "chapter"
	TableExercise   = "exercise"
)

var Tables = []string{TableComplexity, TableSubject, TableChapter, TableExercise}

func validTable(table string) bool {
	for _, t := range Tables {
		if t == table {
			return true
		}
	}
	return false
}

// Resolve maps a slug to its stable id in the given anchor table.
// Lookup is case-sensitive exact match. An absent slug is not an
// error; ok is false.
func Resolve(ctx context.Context, dbConn db.ConnOrTx, table string, slug string) (int, bool, error) {
	if !validTable(table) {
		return 0, false, oops.New(nil, "unknown anchor table %q", table)
	}

	id, err := db.QueryOneScalar[int](ctx, dbConn,
		`SELECT id FROM `+table+` WHERE slug = $1`,
		slug,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return 0, false, nil
		}
		return 0, false, oops.New(err, "failed to resolve %s slug", table)
	}

	return id, true, nil
}

// Reverse maps an anchor id back to its slug.
func Reverse(ctx context.Context, dbConn db.ConnOrTx, table string, id int) (string, bool, error) {
	if !validTable(table) {
		return "", false, oops.New(nil, "unknown anchor table %q", table)
	}

	anchor, err := db.QueryOne[models.Anchor](ctx, dbConn,
		`SELECT $columns FROM `+table+` WHERE id = $1`,
		id,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return "", false, nil
		}
		return "", false, oops.New(err, "failed to reverse %s id", table)
	}

	return anchor.Slug, true, nil
}

// Set is the anchor id set carried by compilations and publications.
// Each field is independently optional.
type Set struct {
	ComplexityID *int
	SubjectID    *int
	ChapterID    *int
	ExerciseID   *int
}

// ResolveSet maps a slug set to anchor ids. Slugs absent from their
// table are dropped, matching Resolve's not-an-error behavior.
func ResolveSet(ctx context.Context, dbConn db.ConnOrTx, slugs map[string]string) (Set, error) {
	var set Set
	dests := map[string]**int{
		TableComplexity: &set.ComplexityID,
		TableSubject:    &set.SubjectID,
		TableChapter:    &set.ChapterID,
		TableExercise:   &set.ExerciseID,
	}
	for table, slug := range slugs {
		dest, ok := dests[table]
		if !ok {
			return Set{}, oops.New(nil, "unknown anchor table %q", table)
		}
		if slug == "" {
			continue
		}
		id, found, err := Resolve(ctx, dbConn, table, slug)
		if err != nil {
			return Set{}, err
		}
		if found {
			idCopy := id
			*dest = &idCopy
		}
	}
	return set, nil
}

// SlugPath reverses an anchor id set into ordered path segments.
// Missing anchors are omitted, never rendered as empty segments.
func SlugPath(ctx context.Context, dbConn db.ConnOrTx, set Set) ([]string, error) {
	ids := []struct {
		table string
		id    *int
	}{
		{TableComplexity, set.ComplexityID},
		{TableSubject, set.SubjectID},
		{TableChapter, set.ChapterID},
		{TableExercise, set.ExerciseID},
	}

	var segments []string
	for _, anchor := range ids {
		if anchor.id == nil {
			continue
		}
		slug, found, err := Reverse(ctx, dbConn, anchor.table, *anchor.id)
		if err != nil {
			return nil, err
		}
		if found {
			segments = append(segments, slug)
		}
	}
	return segments, nil
}
