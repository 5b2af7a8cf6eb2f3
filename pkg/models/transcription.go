package models

import (
	"context"
)

const TranscriptionLanguageSinhala = "sinhala"

// Transcription is the response payload for a transcribed audio upload.
type Transcription struct {
	Transcription string `json:"transcription"`
	Language      string `json:"language"`
	Filename      string `json:"filename"`
}

// AudioTranscriber transcribes an uploaded audio file to text.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, upload *FileUpload) (string, error)
	Close() error
}
