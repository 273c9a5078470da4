package website

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Tnecniv1/mathbank-sub001/src/anchors"
	"github.com/Tnecniv1/mathbank-sub001/src/config"
	"github.com/Tnecniv1/mathbank-sub001/src/publish"
	"github.com/google/uuid"
)

const maxPDFUploadSize = 50 * 1024 * 1024

// POST /publish
//
// Multipart form with a compilation_id field and a pdf file. Runs the
// whole publication pipeline and returns the storage path.
func PublishCompilation(c *RequestContext) ResponseData {
	err := c.Req.ParseMultipartForm(maxPDFUploadSize)
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "invalid multipart form"))
	}

	idStr := c.Req.FormValue("compilation_id")
	if idStr == "" {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(nil, "compilation_id is required"))
	}
	compID, err := uuid.Parse(idStr)
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "compilation_id is not a valid id"))
	}

	pdfBytes, err := readFormFile(c, "pdf")
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "a pdf file is required"))
	}

	storagePath, err := publish.PublishCompilation(c, c.Conn, c.Store, publish.PublishInput{
		CompilationID: compID,
		PDF:           pdfBytes,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.WriteJson(map[string]any{"ok": true, "storage_path": storagePath})
	return res
}

type publicationPayload struct {
	Ref         string            `json:"ref"`
	Title       string            `json:"title"`
	AnchorSlugs map[string]string `json:"anchor_slugs"`
}

// POST /publications
func CreatePublication(c *RequestContext) ResponseData {
	var payload publicationPayload
	err := json.NewDecoder(c.Req.Body).Decode(&payload)
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "invalid JSON payload"))
	}

	anchorSet, err := anchors.ResolveSet(c, c.Conn, payload.AnchorSlugs)
	if err != nil {
		return errorResponse(c, err)
	}

	pub, err := publish.CreatePublication(c, c.Conn, publish.CreatePublicationInput{
		Ref:     payload.Ref,
		Title:   payload.Title,
		Anchors: anchorSet,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.WriteJson(map[string]string{"ref": pub.Ref, "status": string(pub.Status)})
	return res
}

// POST /publications/{ref}/upload
//
// Multipart form with a pdf file. Stores the PDF and records its path
// on the publication.
func UploadPublicationPDF(c *RequestContext) ResponseData {
	ref := c.PathParams["ref"]

	err := c.Req.ParseMultipartForm(maxPDFUploadSize)
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "invalid multipart form"))
	}

	pdfBytes, err := readFormFile(c, "pdf")
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "a pdf file is required"))
	}

	storagePath := fmt.Sprintf("uploads/%s.pdf", ref)
	err = c.Store.Upload(c, storagePath, pdfBytes, "application/pdf")
	if err != nil {
		return errorResponse(c, err)
	}

	err = publish.AttachUpload(c, c.Conn, ref, storagePath)
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.WriteJson(map[string]any{"ok": true, "storage_path": storagePath})
	return res
}

// POST /publications/{ref}/publish
func PublishPublication(c *RequestContext) ResponseData {
	pub, err := publish.Publish(c, c.Conn, c.PathParams["ref"])
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.WriteJson(map[string]any{
		"ref":          pub.Ref,
		"status":       string(pub.Status),
		"published_at": pub.PublishedAt,
	})
	return res
}

// GET /pdfs?complexityId&subjectId&chapterId&exerciseId
//
// The publication catalog: published artifacts with retrievable URLs,
// newest first.
func ListPDFs(c *RequestContext) ResponseData {
	q := publish.CatalogQuery{
		PublicURLs: config.Config.Storage.PublicBucket,
	}
	query := c.URL().Query()
	for param, dest := range map[string]**int{
		"complexityId": &q.ComplexityID,
		"subjectId":    &q.SubjectID,
		"chapterId":    &q.ChapterID,
		"exerciseId":   &q.ExerciseID,
	} {
		if value := query.Get(param); value != "" {
			id, err := strconv.Atoi(value)
			if err != nil {
				return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "%s is not a valid id", param))
			}
			*dest = &id
		}
	}

	entries, err := publish.Catalog(c, c.Conn, c.Store, q)
	if err != nil {
		return errorResponse(c, err)
	}

	var res ResponseData
	res.WriteJson(map[string]any{"items": entries})
	return res
}

func readFormFile(c *RequestContext, field string) ([]byte, error) {
	file, _, err := c.Req.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("uploaded file %q is empty", field)
	}
	return content, nil
}
