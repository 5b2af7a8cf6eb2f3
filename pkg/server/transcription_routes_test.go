package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getidex/idex/pkg/models"
)

func TestTranscribeAudio(t *testing.T) {
	testTranscriber.text = "මෙය පරීක්ෂණ පිටපතකි"
	testTranscriber.err = nil

	res := postFile(t, "/api/v1/transcribe", "voice.mp3", []byte("fake mp3 payload"))
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var transcription models.Transcription
	err := json.NewDecoder(res.Body).Decode(&transcription)
	require.NoError(t, err)

	assert.Equal(t, "මෙය පරීක්ෂණ පිටපතකි", transcription.Transcription)
	assert.Equal(t, models.TranscriptionLanguageSinhala, transcription.Language)
	assert.Equal(t, "voice.mp3", transcription.Filename)

	require.NotNil(t, testTranscriber.lastUpload)
	assert.Equal(t, "audio/mpeg", testTranscriber.lastUpload.MIMEType)
}

func TestTranscribeAudioUnsupportedFormat(t *testing.T) {
	res := postFile(t, "/api/v1/transcribe", "voice.txt", []byte("not audio"))
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestTranscribeAudioProviderFailure(t *testing.T) {
	testTranscriber.text = ""
	testTranscriber.err = errors.New("transcription model unavailable")
	defer func() { testTranscriber.err = nil }()

	res := postFile(t, "/api/v1/transcribe", "voice.wav", []byte("fake wav payload"))
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}
