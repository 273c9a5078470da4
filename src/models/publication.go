package models

import (
	"time"

	"github.com/google/uuid"
)

type PublicationStatus string

const (
	PublicationDraft     PublicationStatus = "draft"
	PublicationUploaded  PublicationStatus = "uploaded"
	PublicationPublished PublicationStatus = "published"
)

type Publication struct {
	ID    uuid.UUID `db:"id"`
	Ref   string    `db:"ref"`
	Title string    `db:"title"`

	ComplexityID *int `db:"complexity_id"`
	SubjectID    *int `db:"subject_id"`
	ChapterID    *int `db:"chapter_id"`
	ExerciseID   *int `db:"exercise_id"`

	Status           PublicationStatus `db:"status"`
	UploadedPDFPath  *string           `db:"uploaded_pdf_path"`
	PublishedPDFPath *string           `db:"published_pdf_path"`
	PublishedAt      *time.Time        `db:"published_at"`

	DateCreated time.Time `db:"date_created"`
}

type PDFArtifact struct {
	ID            uuid.UUID `db:"id"`
	CompilationID uuid.UUID `db:"compilation_id"`
	StoragePath   string    `db:"storage_path"`
	Published     bool      `db:"published"`
	DateCreated   time.Time `db:"date_created"`
}
