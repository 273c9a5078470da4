package publish

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlugifyTitle(t *testing.T) {
	assert.Equal(t, "quiz-1", SlugifyTitle("Quiz 1"))
	assert.Equal(t, "algebra-basics", SlugifyTitle("  Algebra   Basics  "))
	assert.Equal(t, "sums", SlugifyTitle("Sums!?"))
	assert.Equal(t, "a-b", SlugifyTitle("a & b"))
	assert.Equal(t, "", SlugifyTitle("###"))
	assert.Equal(t, "", SlugifyTitle(""))
	assert.Equal(t, "deja-vu", SlugifyTitle("Deja-Vu"))
}

func TestDeriveStoragePath(t *testing.T) {
	compID := uuid.MustParse("7bb5b409-59a6-40ad-a065-8e1c0c3e21c6")

	t.Run("slugs prefix the filename", func(t *testing.T) {
		path := DeriveStoragePath([]string{"easy", "algebra"}, "Quiz 1", compID)
		assert.Equal(t, "easy/algebra/quiz-1.pdf", path)
	})

	t.Run("no anchors means bare filename", func(t *testing.T) {
		path := DeriveStoragePath(nil, "Quiz 1", compID)
		assert.Equal(t, "quiz-1.pdf", path)
	})

	t.Run("unusable title falls back to the compilation id", func(t *testing.T) {
		path := DeriveStoragePath([]string{"easy"}, "###", compID)
		assert.Equal(t, "easy/"+compID.String()+".pdf", path)
	})

	t.Run("stable for identical input", func(t *testing.T) {
		first := DeriveStoragePath([]string{"easy", "algebra"}, "Quiz 1", compID)
		second := DeriveStoragePath([]string{"easy", "algebra"}, "Quiz 1", compID)
		assert.Equal(t, first, second)
	})
}
