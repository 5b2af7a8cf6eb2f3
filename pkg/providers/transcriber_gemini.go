package providers

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/getidex/idex/config"
	"github.com/getidex/idex/internal"
	"github.com/getidex/idex/pkg/models"
)

const GeminiAPITimeout = 120 * time.Second

const fileStatePollInterval = 2 * time.Second

// transcribePromptTemplate asks the model for the transcription text and
// nothing else. Output language matches the expected audio language.
const transcribePromptTemplate = "Transcribe this audio file. The audio is in {{.Language}} language. " +
	"Provide only the transcription text in {{.Language}}, without any additional " +
	"commentary or explanation."

type transcribePromptData struct {
	Language string
}

// GeminiTranscriber transcribes audio uploads with a Gemini model via
// the Files API.
type GeminiTranscriber struct {
	client      *genai.Client
	model       string
	prompt      string
	retryPolicy retrypolicy.RetryPolicy[any]
}

var _ models.AudioTranscriber = &GeminiTranscriber{}

func NewGeminiTranscriber(ctx context.Context, cfg *config.Config) (*GeminiTranscriber, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	prompt, err := internal.ParsePrompt(
		transcribePromptTemplate,
		transcribePromptData{Language: "Sinhala"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcription prompt: %w", err)
	}

	return &GeminiTranscriber{
		client:      client,
		model:       cfg.Gemini.Model,
		prompt:      prompt,
		retryPolicy: newRetryPolicy(),
	}, nil
}

func (t *GeminiTranscriber) Transcribe(
	ctx context.Context,
	upload *models.FileUpload,
) (string, error) {
	requestID := uuid.New().String()
	log.WithFields(logrus.Fields{
		"request_id": requestID,
		"filename":   upload.Filename,
		"mime_type":  upload.MIMEType,
		"bytes":      len(upload.Content),
	}).Debug("uploading audio for transcription")

	thisCtx, cancel := context.WithTimeout(ctx, GeminiAPITimeout)
	defer cancel()

	file, err := t.client.UploadFile(
		thisCtx,
		"",
		bytes.NewReader(upload.Content),
		&genai.UploadFileOptions{MIMEType: upload.MIMEType},
	)
	if err != nil {
		return "", NewProviderError("error uploading audio", err)
	}
	defer func() {
		// The uploaded file is request-scoped, remove it once we have
		// the transcription.
		if err := t.client.DeleteFile(context.Background(), file.Name); err != nil {
			log.WithField("request_id", requestID).
				Warnf("failed to delete uploaded audio: %v", err)
		}
	}()

	// File ingestion is asynchronous, wait for the upload to leave the
	// processing state before referencing it in a prompt.
	for file.State == genai.FileStateProcessing {
		select {
		case <-thisCtx.Done():
			return "", thisCtx.Err()
		case <-time.After(fileStatePollInterval):
		}
		file, err = t.client.GetFile(thisCtx, file.Name)
		if err != nil {
			return "", NewProviderError("error polling uploaded audio", err)
		}
	}
	if file.State != genai.FileStateActive {
		return "", NewProviderError(
			fmt.Sprintf("uploaded audio in unexpected state %v", file.State),
			nil,
		)
	}

	model := t.client.GenerativeModel(t.model)

	respVal, err := failsafe.Get(func() (any, error) {
		return model.GenerateContent(
			thisCtx,
			genai.Text(t.prompt),
			genai.FileData{URI: file.URI, MIMEType: file.MIMEType},
		)
	}, t.retryPolicy)
	if err != nil {
		return "", NewProviderError("error transcribing audio", err)
	}
	resp, ok := respVal.(*genai.GenerateContentResponse)
	if !ok {
		return "", NewProviderError("unexpected generate response type", nil)
	}

	text := responseText(resp)
	if text == "" {
		return "", NewProviderError("no transcription in model response", nil)
	}

	log.WithFields(logrus.Fields{
		"request_id": requestID,
		"chars":      len(text),
	}).Debug("audio transcribed")

	return text, nil
}

func (t *GeminiTranscriber) Close() error {
	return t.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
