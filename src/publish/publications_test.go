package publish

import (
	"testing"

	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/stretchr/testify/assert"
)

func TestCheckPublishable(t *testing.T) {
	t.Run("no upload at all", func(t *testing.T) {
		pub := &models.Publication{Status: models.PublicationDraft}
		assert.ErrorIs(t, checkPublishable(pub), ErrNoUploadedPDF)
	})

	t.Run("empty upload path", func(t *testing.T) {
		empty := ""
		pub := &models.Publication{
			Status:          models.PublicationUploaded,
			UploadedPDFPath: &empty,
		}
		assert.ErrorIs(t, checkPublishable(pub), ErrNoUploadedPDF)
	})

	t.Run("uploaded path present", func(t *testing.T) {
		path := "uploads/weekly-quiz.pdf"
		pub := &models.Publication{
			Status:          models.PublicationUploaded,
			UploadedPDFPath: &path,
		}
		assert.Nil(t, checkPublishable(pub))
	})
}
