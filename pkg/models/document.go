package models

import (
	"context"
)

// RawEntity is a single tagged extraction from the document provider.
// Both the provider's entity list and its page form fields are flattened
// into this shape before normalization.
type RawEntity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Gender is derived from the day code embedded in a national identity number.
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

// IDRecord is the normalized result of processing an identity document.
// Age is nil unless DOB parsed. Gender is GenderUnknown unless the ID
// matched a recognized national identity number shape.
type IDRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	DOB        string `json:"dob"`
	BloodGroup string `json:"bg"`
	Age        *int   `json:"age"`
	Gender     Gender `json:"gender"`
}

// FileUpload carries the contents of an uploaded file together with its
// resolved MIME type.
type FileUpload struct {
	Filename string
	MIMEType string
	Content  []byte
}

// DocumentExtractor extracts raw typed entities from an identity document.
type DocumentExtractor interface {
	ExtractEntities(ctx context.Context, upload *FileUpload) ([]RawEntity, error)
	Close() error
}
