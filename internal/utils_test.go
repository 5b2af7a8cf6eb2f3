package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrompt(t *testing.T) {
	promptTemplate := "Transcribe this audio file. The audio is in {{.Language}} language."
	data := struct {
		Language string
	}{
		Language: "Sinhala",
	}

	got, err := ParsePrompt(promptTemplate, data)
	require.NoError(t, err)
	assert.Equal(
		t,
		"Transcribe this audio file. The audio is in Sinhala language.",
		got,
	)
}

func TestParsePromptInvalidTemplate(t *testing.T) {
	_, err := ParsePrompt("{{.Language", nil)
	assert.Error(t, err)
}

func TestParsePromptMissingField(t *testing.T) {
	// Referencing a field absent from the data is an execution error.
	_, err := ParsePrompt("{{.Missing}}", struct{ Language string }{"Sinhala"})
	assert.Error(t, err)
}
