package server

import (
	"net/http"

	"github.com/getidex/idex/internal"
	"github.com/getidex/idex/pkg/models"
	"github.com/getidex/idex/pkg/normalizer"
	"github.com/getidex/idex/pkg/server/handlertools"
)

var log = internal.GetLogger()

// ProcessDocumentHandler godoc
//
//	@Summary		Extracts normalized identity fields from an uploaded document
//	@Description	upload an identity document image or PDF for field extraction
//	@Tags			document
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Identity document (pdf, png, jpg, jpeg, gif, tiff, bmp, webp)"
//	@Success		200		{object}	models.IDRecord
//	@Failure		400		{object}	APIError	"Bad Request"
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Router			/api/v1/process [post]
func ProcessDocumentHandler(appState *models.AppState) http.HandlerFunc {
	extractor := appState.Extractor
	maxBytes := appState.Config.Server.MaxUploadMB << 20
	return func(w http.ResponseWriter, r *http.Request) {
		upload, err := handlertools.FileFromForm(w, r, "file", maxBytes)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		mimeType, err := handlertools.DocumentMIME(upload.Filename, upload.Content)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		upload.MIMEType = mimeType

		entities, err := extractor.ExtractEntities(r.Context(), upload)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		record := normalizer.Normalize(entities)

		if err := handlertools.EncodeJSON(w, record); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// APIError represents an error response. Used for swagger documentation.
type APIError struct {
	Message string `json:"message"`
}
