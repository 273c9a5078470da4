package website

import (
	"encoding/json"
	"net/http"

	"github.com/Tnecniv1/mathbank-sub001/src/anchors"
	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
	"github.com/google/uuid"
)

type saveItemPayload struct {
	ID              int   `json:"id"`
	Order           int   `json:"order"`
	IncludeSolution *bool `json:"include_solution"`
}

type savePayload struct {
	CompilationID string            `json:"compilation_id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	AnchorSlugs   map[string]string `json:"anchor_slugs"`
	Items         []saveItemPayload `json:"items"`
}

// POST /save
//
// Creates a draft compilation, or wholesale-replaces the item list of
// an existing one when compilation_id is present.
func SaveCompilation(c *RequestContext) ResponseData {
	var payload savePayload
	err := json.NewDecoder(c.Req.Body).Decode(&payload)
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "invalid JSON payload"))
	}

	items := make([]bankdata.ItemRef, len(payload.Items))
	for i, item := range payload.Items {
		items[i] = bankdata.ItemRef{
			ItemID:          item.ID,
			Order:           item.Order,
			IncludeSolution: item.IncludeSolution,
		}
	}

	if payload.CompilationID != "" {
		compID, err := uuid.Parse(payload.CompilationID)
		if err != nil {
			return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "compilation_id is not a valid id"))
		}

		err = bankdata.ReplaceCompilationItems(c, c.Conn, compID, items)
		if err != nil {
			return errorResponse(c, err)
		}

		var res ResponseData
		res.WriteJson(map[string]string{"compilation_id": compID.String()})
		return res
	}

	anchorSet, err := anchors.ResolveSet(c, c.Conn, payload.AnchorSlugs)
	if err != nil {
		return errorResponse(c, err)
	}

	compID, err := bankdata.CreateCompilation(c, c.Conn, bankdata.CreateCompilationInput{
		Title:       payload.Title,
		Description: payload.Description,
		Anchors:     anchorSet,
		Items:       items,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.WriteJson(map[string]string{"compilation_id": compID.String()})
	return res
}
