package models

import (
	"time"

	"github.com/google/uuid"
)

type Compilation struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`

	// Each anchor is independently optional.
	ComplexityID *int `db:"complexity_id"`
	SubjectID    *int `db:"subject_id"`
	ChapterID    *int `db:"chapter_id"`
	ExerciseID   *int `db:"exercise_id"`

	Finalized   bool      `db:"finalized"`
	DateCreated time.Time `db:"date_created"`
	DateUpdated time.Time `db:"date_updated"`
}

type CompilationItem struct {
	CompilationID   uuid.UUID `db:"compilation_id"`
	ItemID          int       `db:"item_id"`
	Position        int       `db:"position"`
	IncludeSolution bool      `db:"include_solution"`
}
