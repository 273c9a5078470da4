package website

import (
	"errors"
	"net/http"

	"github.com/Tnecniv1/mathbank-sub001/src/bankdata"
	"github.com/Tnecniv1/mathbank-sub001/src/db"
	"github.com/Tnecniv1/mathbank-sub001/src/publish"
)

// Maps domain errors to HTTP responses: bad input is a 400, missing
// entities are 404, calling publish before upload is a 409, anything
// else is a 500 carrying the error's message.
func errorResponse(c *RequestContext, err error) ResponseData {
	var validation bankdata.ValidationError
	if errors.As(err, &validation) {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "%s", validation.Msg))
	}
	if errors.Is(err, db.NotFound) {
		return c.ErrorResponse(http.StatusNotFound, NewSafeError(err, "not found"))
	}
	if errors.Is(err, publish.ErrNoUploadedPDF) {
		return c.ErrorResponse(http.StatusConflict, NewSafeError(err, "%s", publish.ErrNoUploadedPDF.Error()))
	}
	return c.ErrorResponse(http.StatusInternalServerError, NewSafeError(err, "%s", err.Error()))
}
