package server

import (
	"net/http"

	"github.com/getidex/idex/pkg/models"
	"github.com/getidex/idex/pkg/server/handlertools"
)

// TranscribeAudioHandler godoc
//
//	@Summary		Transcribes an uploaded audio file
//	@Description	upload an audio file for Sinhala transcription
//	@Tags			transcription
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Audio file (mp3, wav, flac, m4a, aac, ogg, wma)"
//	@Success		200		{object}	models.Transcription
//	@Failure		400		{object}	APIError	"Bad Request"
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Router			/api/v1/transcribe [post]
func TranscribeAudioHandler(appState *models.AppState) http.HandlerFunc {
	transcriber := appState.Transcriber
	maxBytes := appState.Config.Server.MaxUploadMB << 20
	return func(w http.ResponseWriter, r *http.Request) {
		upload, err := handlertools.FileFromForm(w, r, "file", maxBytes)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		mimeType, err := handlertools.AudioMIME(upload.Filename)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		upload.MIMEType = mimeType

		text, err := transcriber.Transcribe(r.Context(), upload)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		transcription := models.Transcription{
			Transcription: text,
			Language:      models.TranscriptionLanguageSinhala,
			Filename:      upload.Filename,
		}

		if err := handlertools.EncodeJSON(w, transcription); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
