package publish

import (
	"context"

	"github.com/Tnecniv1/mathbank-sub001/src/anchors"
	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/logging"
	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/Tnecniv1/mathbank-sub001/src/oops"
	"github.com/Tnecniv1/mathbank-sub001/src/storage"
	"github.com/google/uuid"
)

type PublishInput struct {
	CompilationID uuid.UUID
	PDF           []byte
}

// PublishCompilation runs the whole publication sequence for a
// finished PDF: derive the storage path from the compilation's
// anchors and title, upload, record item usage, finalize, and write
// the artifact record. The steps are not wrapped in one transaction;
// a failure partway through leaves earlier steps in place, and the
// caller recovers by re-invoking the pipeline (the upload overwrites
// the same path).
func PublishCompilation(ctx context.Context, dbConn db.ConnOrTx, store storage.Client, in PublishInput) (string, error) {
	if in.CompilationID == uuid.Nil {
		return "", bankdata.ValidationError{Msg: "compilation id is required"}
	}
	if len(in.PDF) == 0 {
		return "", bankdata.ValidationError{Msg: "PDF payload is required"}
	}

	comp, err := bankdata.FetchCompilation(ctx, dbConn, in.CompilationID)
	if err != nil {
		return "", err
	}

	slugs, err := anchors.SlugPath(ctx, dbConn, anchors.Set{
		ComplexityID: comp.ComplexityID,
		SubjectID:    comp.SubjectID,
		ChapterID:    comp.ChapterID,
		ExerciseID:   comp.ExerciseID,
	})
	if err != nil {
		return "", err
	}

	storagePath := DeriveStoragePath(slugs, comp.Title, comp.ID)

	err = store.Upload(ctx, storagePath, in.PDF, "application/pdf")
	if err != nil {
		return "", err
	}

	compItems, err := bankdata.FetchCompilationItems(ctx, dbConn, comp.ID)
	if err != nil {
		return "", err
	}
	itemIDs := make([]int, len(compItems))
	for i, ci := range compItems {
		itemIDs[i] = ci.ItemID
	}

	err = bankdata.RecordItemUsage(ctx, dbConn, comp.ID, itemIDs)
	if err != nil {
		return "", err
	}

	// Counter bumps are telemetry. A failure here must not abort an
	// otherwise successful publication.
	err = bankdata.IncrementItemUsage(ctx, dbConn, itemIDs)
	if err != nil {
		logging.ExtractLogger(ctx).Error().Err(err).Msg("failed to bump item usage counters")
	}

	err = bankdata.FinalizeCompilation(ctx, dbConn, comp.ID)
	if err != nil {
		return "", err
	}

	artifact, err := db.QueryOne[models.PDFArtifact](ctx, dbConn,
		`
		INSERT INTO pdf_artifact (id, compilation_id, storage_path, published, date_created)
		VALUES ($1, $2, $3, TRUE, NOW())
		RETURNING $columns
		`,
		uuid.New(), comp.ID, storagePath,
	)
	if err != nil {
		return "", oops.New(err, "failed to record PDF artifact")
	}

	return artifact.StoragePath, nil
}
