package handlertools

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getidex/idex/internal"
	"github.com/getidex/idex/pkg/models"
)

var log = internal.GetLogger()

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// RenderError renders an error response.
func RenderError(w http.ResponseWriter, err error, status int) {
	if err.Error() == "http: request body too large" {
		status = http.StatusRequestEntityTooLarge
		err = fmt.Errorf("request body too large. reduce the size of the uploaded file")
	}

	switch {
	case errors.Is(err, models.ErrBadRequest), errors.Is(err, models.ErrUnsupportedMedia):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	}

	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}

	http.Error(w, err.Error(), status)
}

// FileFromForm extracts the named file part of a multipart request,
// bounding the request body at maxBytes. The returned upload carries the
// original filename and content; the caller resolves the MIME type.
func FileFromForm(
	w http.ResponseWriter,
	r *http.Request,
	field string,
	maxBytes int64,
) (*models.FileUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, models.NewBadRequestError(fmt.Sprintf("%s is required", field))
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, models.NewBadRequestError("file name is required")
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.FileUpload{
		Filename: header.Filename,
		Content:  content,
	}, nil
}
