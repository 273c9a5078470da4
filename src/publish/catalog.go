package publish

import (
	"context"
	"time"

	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
	"github.com/Tnecniv1/mathbank-sub001/src/storage"
	"golang.org/x/sync/errgroup"
)

type CatalogQuery struct {
	ComplexityID *int
	SubjectID    *int
	ChapterID    *int
	ExerciseID   *int

	// PublicURLs selects plain public URLs instead of signed ones.
	PublicURLs bool

	Limit, Offset int
}

type CatalogEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"when"`
	URL         string    `json:"url"`
}

// Catalog lists published artifacts, newest first, optionally
// narrowed by any subset of the anchors. Each entry carries a
// retrievable URL; URL resolution fans out since rows are
// independent.
func Catalog(ctx context.Context, dbConn db.ConnOrTx, store storage.Client, q CatalogQuery) ([]CatalogEntry, error) {
	qb := catalogQuery(q)
	pubs, err := db.Query[models.Publication](ctx, dbConn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch publication catalog")
	}

	entries := make([]CatalogEntry, len(pubs))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, pub := range pubs {
		i, pub := i, pub
		eg.Go(func() error {
			url, err := storage.ResolveURL(egCtx, store, *pub.PublishedPDFPath, q.PublicURLs)
			if err != nil {
				return oops.New(err, "failed to resolve URL for publication %s", pub.Ref)
			}
			entries[i] = CatalogEntry{
				ID:          pub.ID.String(),
				Title:       pub.Title,
				PublishedAt: *pub.PublishedAt,
				URL:         url,
			}
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// catalogQuery builds the catalog SELECT. Only fully published rows
// qualify; a row with no published path or no timestamp is invisible
// regardless of status.
func catalogQuery(q CatalogQuery) db.QueryBuilder {
	var qb db.QueryBuilder
	qb.Add(
		`
		SELECT $columns
		FROM publication
		WHERE
			status = $?
			AND published_pdf_path IS NOT NULL
			AND published_at IS NOT NULL
		`,
		models.PublicationPublished,
	)
	if q.ComplexityID != nil {
		qb.Add(`AND complexity_id = $?`, *q.ComplexityID)
	}
	if q.SubjectID != nil {
		qb.Add(`AND subject_id = $?`, *q.SubjectID)
	}
	if q.ChapterID != nil {
		qb.Add(`AND chapter_id = $?`, *q.ChapterID)
	}
	if q.ExerciseID != nil {
		qb.Add(`AND exercise_id = $?`, *q.ExerciseID)
	}
	qb.Add(`ORDER BY published_at DESC`)
	if q.Limit > 0 {
		qb.Add(`LIMIT $? OFFSET $?`, q.Limit, q.Offset)
	}
	return qb
}
