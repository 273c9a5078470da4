package publish

import (
	"strings"
	"testing"

	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/stretchr/testify/assert"
)

func TestCatalogQuery(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		qb := catalogQuery(CatalogQuery{})
		sql := qb.String()
		assert.Contains(t, sql, "status = $1")
		assert.Contains(t, sql, "published_pdf_path IS NOT NULL")
		assert.Contains(t, sql, "published_at IS NOT NULL")
		assert.Contains(t, sql, "ORDER BY published_at DESC")
		assert.NotContains(t, sql, "LIMIT")
		assert.Equal(t, []interface{}{models.PublicationPublished}, qb.Args())
	})

	t.Run("anchor filters bind in order", func(t *testing.T) {
		subject := 3
		exercise := 7
		qb := catalogQuery(CatalogQuery{SubjectID: &subject, ExerciseID: &exercise})
		sql := qb.String()
		assert.Contains(t, sql, "AND subject_id = $2")
		assert.Contains(t, sql, "AND exercise_id = $3")
		assert.NotContains(t, sql, "complexity_id")
		assert.NotContains(t, sql, "chapter_id")
		assert.Equal(t, []interface{}{models.PublicationPublished, 3, 7}, qb.Args())
	})

	t.Run("newest first comes after every filter", func(t *testing.T) {
		complexity := 1
		qb := catalogQuery(CatalogQuery{ComplexityID: &complexity})
		sql := qb.String()
		assert.Less(t, strings.Index(sql, "complexity_id"), strings.Index(sql, "ORDER BY published_at DESC"))
	})

	t.Run("limit and offset", func(t *testing.T) {
		qb := catalogQuery(CatalogQuery{Limit: 10, Offset: 20})
		assert.Contains(t, qb.String(), "LIMIT $2 OFFSET $3")
		assert.Equal(t, []interface{}{models.PublicationPublished, 10, 20}, qb.Args())
	})
}
