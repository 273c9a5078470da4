package latex

import (
	"strings"
	"testing"

	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "Tom \\& Jerry", Escape("Tom & Jerry"))
	assert.Equal(t, "100\\%", Escape("100%"))
	assert.Equal(t, "\\$x\\_1\\$", Escape("$x_1$"))
	assert.Equal(t, "\\#1 \\{braces\\}", Escape("#1 {braces}"))
	assert.Equal(t, "\\textasciitilde{}a\\textasciicircum{}b", Escape("~a^b"))
	assert.Equal(t, "a\\textbackslash{}b", Escape(`a\b`))
	assert.Equal(t, "plain text", Escape("plain text"))
}

func testCompilation(title string) *models.Compilation {
	return &models.Compilation{
		ID:    uuid.MustParse("b3b0ef54-94a1-4e5c-9c5e-2f51aa04b0d1"),
		Title: title,
	}
}

func TestRenderNumbering(t *testing.T) {
	docs := Render(testCompilation("Quiz"), []RenderItem{
		{ID: 1, Position: 1, Statement: "A", Solution: "sol A", IncludeSolution: true},
		{ID: 2, Position: 2, Statement: "B", Solution: "sol B", IncludeSolution: false},
		{ID: 3, Position: 3, Statement: "C", Solution: "sol C", IncludeSolution: true},
	})

	assert.Contains(t, docs.Items, "\\section*{Exercise 1.}")
	assert.Contains(t, docs.Items, "\\section*{Exercise 2.}")
	assert.Contains(t, docs.Items, "\\section*{Exercise 3.}")

	// Solutions restart at 1 and skip excluded items entirely.
	assert.Contains(t, docs.Solutions, "\\section*{Solution 1.}")
	assert.Contains(t, docs.Solutions, "sol A")
	assert.Contains(t, docs.Solutions, "\\section*{Solution 2.}")
	assert.Contains(t, docs.Solutions, "sol C")
	assert.NotContains(t, docs.Solutions, "\\section*{Solution 3.}")
	assert.NotContains(t, docs.Solutions, "sol B")
}

func TestRenderEmptyStatement(t *testing.T) {
	docs := Render(testCompilation("Quiz"), []RenderItem{
		{ID: 1, Position: 1, Statement: "", IncludeSolution: true},
		{ID: 2, Position: 2, Statement: "B", IncludeSolution: true},
	})

	// Empty statements keep their heading and their number.
	assert.Contains(t, docs.Items, "\\section*{Exercise 1.}")
	assert.Contains(t, docs.Items, "\\section*{Exercise 2.}")
}

func TestRenderEmptyList(t *testing.T) {
	docs := Render(testCompilation("Empty"), nil)

	assert.NotEmpty(t, docs.Main)
	assert.NotEmpty(t, docs.Items)
	assert.NotEmpty(t, docs.Solutions)
	assert.Empty(t, docs.Manifest.Items)
}

func TestRenderEscapesTitle(t *testing.T) {
	docs := Render(testCompilation("Q&A #1"), nil)
	assert.Contains(t, docs.Main, "\\title{Q\\&A \\#1}")
	assert.False(t, strings.Contains(docs.Main, "Q&A"))
}

func TestRenderDeterministic(t *testing.T) {
	items := []RenderItem{
		{ID: 1, Position: 1, Statement: "A", Solution: "sol A", IncludeSolution: true},
		{ID: 2, Position: 2, Statement: "B", Solution: "sol B", IncludeSolution: true},
	}

	first := Render(testCompilation("Quiz"), items)
	second := Render(testCompilation("Quiz"), items)
	assert.Equal(t, first, second)
}
