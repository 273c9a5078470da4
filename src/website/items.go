package website

import (
	"encoding/json"
	"net/http"

	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
)

type itemPayload struct {
	Ref       string   `json:"ref"`
	Statement string   `json:"statement"`
	Solution  string   `json:"solution"`
	Tags      []string `json:"tags"`
}

// POST /items
func CreateItem(c *RequestContext) ResponseData {
	var payload itemPayload
	err := json.NewDecoder(c.Req.Body).Decode(&payload)
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "invalid JSON payload"))
	}

	id, err := bankdata.CreateItem(c, c.Conn, bankdata.CreateItemInput{
		Ref:       payload.Ref,
		Statement: payload.Statement,
		Solution:  payload.Solution,
		Tags:      payload.Tags,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.WriteJson(map[string]int{"id": id})
	return res
}
