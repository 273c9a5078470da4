package latex

import (
	"fmt"
	"strings"

	"github.com/Tnecniv1/mathbank-sub001/src/models"
	"github.com/google/uuid"
)

// RenderItem is one exercise in render order. Statement and Solution
// are raw LaTeX source; only metadata like the title gets escaped.
type RenderItem struct {
	ID              int
	Position        int
	Statement       string
	Solution        string
	IncludeSolution bool
}

type Documents struct {
	Main      string
	Macros    string
	Items     string
	Solutions string
	Manifest  Manifest
}

type Manifest struct {
	CompilationID uuid.UUID      `json:"compilation_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ComplexityID  *int           `json:"complexity_id"`
	SubjectID     *int           `json:"subject_id"`
	ChapterID     *int           `json:"chapter_id"`
	ExerciseID    *int           `json:"exercise_id"`
	Items         []ManifestItem `json:"items"`
}

type ManifestItem struct {
	ID              int  `json:"id"`
	Position        int  `json:"position"`
	IncludeSolution bool `json:"include_solution"`
}

// Render produces the full document source tree for a compilation.
// Output is deterministic: the same compilation and item list always
// yields byte-identical documents.
func Render(comp *models.Compilation, items []RenderItem) Documents {
	manifestItems := make([]ManifestItem, len(items))
	for i, item := range items {
		manifestItems[i] = ManifestItem{
			ID:              item.ID,
			Position:        item.Position,
			IncludeSolution: item.IncludeSolution,
		}
	}

	return Documents{
		Main:      renderMain(comp.Title),
		Macros:    macrosStub,
		Items:     renderItems(items),
		Solutions: renderSolutions(items),
		Manifest: Manifest{
			CompilationID: comp.ID,
			Title:         comp.Title,
			Description:   comp.Description,
			ComplexityID:  comp.ComplexityID,
			SubjectID:     comp.SubjectID,
			ChapterID:     comp.ChapterID,
			ExerciseID:    comp.ExerciseID,
			Items:         manifestItems,
		},
	}
}

// User-extensible preamble. Intentionally empty by default.
const macrosStub = "% Custom macros for this compilation.\n"

func renderMain(title string) string {
	var b strings.Builder
	b.WriteString("\\documentclass[11pt]{article}\n")
	b.WriteString("\\usepackage[utf8]{inputenc}\n")
	b.WriteString("\\usepackage[T1]{fontenc}\n")
	b.WriteString("\\usepackage{amsmath,amssymb}\n")
	b.WriteString("\\input{macros}\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "\\title{%s}\n", Escape(title))
	b.WriteString("\\date{}\n")
	b.WriteString("\n")
	b.WriteString("\\begin{document}\n")
	b.WriteString("\\maketitle\n")
	b.WriteString("\n")
	b.WriteString("\\input{items}\n")
	b.WriteString("\n")
	b.WriteString("\\clearpage\n")
	b.WriteString("\\input{solutions}\n")
	b.WriteString("\\end{document}\n")
	return b.String()
}

func renderItems(items []RenderItem) string {
	if len(items) == 0 {
		return emptyPlaceholder
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\\section*{Exercise %d.}\n", i+1)
		if item.Statement != "" {
			b.WriteString(item.Statement)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Solutions numbering is independent of the exercise numbering: it
// restarts at 1 and counts only included items.
func renderSolutions(items []RenderItem) string {
	n := 0
	var b strings.Builder
	for _, item := range items {
		if !item.IncludeSolution {
			continue
		}
		n++
		if n > 1 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\\section*{Solution %d.}\n", n)
		if item.Solution != "" {
			b.WriteString(item.Solution)
			b.WriteString("\n")
		}
	}
	if n == 0 {
		return emptyPlaceholder
	}
	return b.String()
}

const emptyPlaceholder = "% This compilation has no content yet.\n"

var latexSpecials = map[rune]string{
	'&':  "\\&",
	'%':  "\\%",
	'$':  "\\$",
	'#':  "\\#",
	'_':  "\\_",
	'{':  "\\{",
	'}':  "\\}",
	'~':  "\\textasciitilde{}",
	'^':  "\\textasciicircum{}",
	'\\': "\\textbackslash{}",
}

// Escape makes arbitrary text safe to splice into LaTeX source.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if escaped, ok := latexSpecials[r]; ok {
			b.WriteString(escaped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
