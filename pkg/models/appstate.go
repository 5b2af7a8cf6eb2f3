package models

import (
	"github.com/getidex/idex/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Extractor   DocumentExtractor
	Transcriber AudioTranscriber
	Config      *config.Config
}
