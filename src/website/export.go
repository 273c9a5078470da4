package website

import (
	"fmt"
	"net/http"

	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
	"github.com/Tnecniv1/mathbank-sub001/src/latex"
	"github.com/Tnecniv1/mathbank-sub001/src/publish"
	"github.com/google/uuid"
)

// GET /export?compilation_id=<id>
//
// Renders the compilation's document tree and returns it as a zip
// archive ready for external typesetting.
func Export(c *RequestContext) ResponseData {
	idStr := c.URL().Query().Get("compilation_id")
	if idStr == "" {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(nil, "compilation_id is required"))
	}
	compID, err := uuid.Parse(idStr)
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "compilation_id is not a valid id"))
	}

	comp, err := bankdata.FetchCompilation(c, c.Conn, compID)
	if err != nil {
		return errorResponse(c, err)
	}

	contents, err := bankdata.FetchCompilationContents(c, c.Conn, compID)
	if err != nil {
		return errorResponse(c, err)
	}

	renderItems := make([]latex.RenderItem, len(contents))
	for i, content := range contents {
		renderItems[i] = latex.RenderItem{
			ID:              content.Item.ID,
			Position:        content.Ref.Position,
			Statement:       content.Item.Statement,
			Solution:        content.Item.Solution,
			IncludeSolution: content.Ref.IncludeSolution,
		}
	}

	docs := latex.Render(comp, renderItems)
	archive, err := latex.Pack(docs)
	if err != nil {
		return errorResponse(c, err)
	}

	filename := publish.SlugifyTitle(comp.Title)
	if filename == "" {
		filename = comp.ID.String()
	}

	var res ResponseData
	res.Header().Set("Content-Type", "application/zip")
	res.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".zip"))
	res.Write(archive)
	return res
}
