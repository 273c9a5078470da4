package publish

import (
	"context"
	"errors"

	"github.com/Tnecniv1/mathbank-sub001/src/anchors"
	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
	"github.com/google/uuid"
)

// ErrNoUploadedPDF means Publish was called before any PDF was
// attached to the publication.
var ErrNoUploadedPDF = errors.New("publication has no uploaded PDF")

type CreatePublicationInput struct {
	Ref     string
	Title   string
	Anchors anchors.Set
}

func CreatePublication(ctx context.Context, dbConn db.ConnOrTx, in CreatePublicationInput) (*models.Publication, error) {
	if in.Ref == "" {
		return nil, bankdata.ValidationError{Msg: "publication ref is required"}
	}
	if in.Title == "" {
		return nil, bankdata.ValidationError{Msg: "publication title is required"}
	}

	pub, err := db.QueryOne[models.Publication](ctx, dbConn,
		`
		INSERT INTO publication (
			id, ref, title,
			complexity_id, subject_id, chapter_id, exercise_id,
			status, date_created
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING $columns
		`,
		uuid.New(), in.Ref, in.Title,
		in.Anchors.ComplexityID, in.Anchors.SubjectID, in.Anchors.ChapterID, in.Anchors.ExerciseID,
		models.PublicationDraft,
	)
	if err != nil {
		return nil, oops.New(err, "failed to create publication")
	}

	return pub, nil
}

func FetchPublication(ctx context.Context, dbConn db.ConnOrTx, ref string) (*models.Publication, error) {
	pub, err := db.QueryOne[models.Publication](ctx, dbConn,
		`
		SELECT $columns
		FROM publication
		WHERE ref = $1
		`,
		ref,
	)
	if err != nil {
		if err == db.NotFound {
			return nil, err
		}
		return nil, oops.New(err, "failed to fetch publication")
	}
	return pub, nil
}

// AttachUpload records the storage path of an uploaded PDF and moves
// the publication to uploaded. Attaching again replaces the path.
func AttachUpload(ctx context.Context, dbConn db.ConnOrTx, ref string, storagePath string) error {
	if storagePath == "" {
		return bankdata.ValidationError{Msg: "storage path is required"}
	}

	tag, err := dbConn.Exec(ctx,
		`
		UPDATE publication
		SET uploaded_pdf_path = $2, status = $3
		WHERE ref = $1
		`,
		ref, storagePath, models.PublicationUploaded,
	)
	if err != nil {
		return oops.New(err, "failed to attach upload to publication")
	}
	if tag.RowsAffected() == 0 {
		return db.NotFound
	}

	return nil
}

// checkPublishable is the publish precondition: a PDF must have been
// attached first.
func checkPublishable(pub *models.Publication) error {
	if pub.UploadedPDFPath == nil || *pub.UploadedPDFPath == "" {
		return ErrNoUploadedPDF
	}
	return nil
}

// Publish moves an uploaded publication to published: the uploaded
// path becomes the published path and the publish time is stamped.
func Publish(ctx context.Context, dbConn db.ConnOrTx, ref string) (*models.Publication, error) {
	pub, err := FetchPublication(ctx, dbConn, ref)
	if err != nil {
		return nil, err
	}

	if err := checkPublishable(pub); err != nil {
		return nil, err
	}

	updated, err := db.QueryOne[models.Publication](ctx, dbConn,
		`
		UPDATE publication
		SET published_pdf_path = uploaded_pdf_path,
			published_at = NOW(),
			status = $2
		WHERE ref = $1
		RETURNING $columns
		`,
		ref, models.PublicationPublished,
	)
	if err != nil {
		return nil, oops.New(err, "failed to publish publication")
	}

	return updated, nil
}
