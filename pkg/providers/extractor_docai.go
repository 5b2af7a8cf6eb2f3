package providers

import (
	"context"
	"fmt"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/getidex/idex/config"
	"github.com/getidex/idex/pkg/models"
)

const DocAIAPITimeout = 90 * time.Second

// DocAIExtractor sends identity documents to a Document AI processor and
// flattens the response into raw entities.
type DocAIExtractor struct {
	client        *documentai.DocumentProcessorClient
	processorName string
	retryPolicy   retrypolicy.RetryPolicy[any]
}

var _ models.DocumentExtractor = &DocAIExtractor{}

// NewDocAIExtractor creates a Document AI client against the regional
// endpoint configured in cfg.
func NewDocAIExtractor(ctx context.Context, cfg *config.Config) (*DocAIExtractor, error) {
	opts := []option.ClientOption{
		option.WithEndpoint(
			fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.DocAI.Location),
		),
	}
	if cfg.DocAI.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.DocAI.CredentialsFile))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create document ai client: %w", err)
	}

	return &DocAIExtractor{
		client:        client,
		processorName: processorName(cfg),
		retryPolicy:   newRetryPolicy(),
	}, nil
}

// processorName builds the fully qualified processor version resource name.
func processorName(cfg *config.Config) string {
	return fmt.Sprintf(
		"projects/%s/locations/%s/processors/%s/processorVersions/%s",
		cfg.DocAI.ProjectID,
		cfg.DocAI.Location,
		cfg.DocAI.ProcessorID,
		cfg.DocAI.ProcessorVersion,
	)
}

func (e *DocAIExtractor) ExtractEntities(
	ctx context.Context,
	upload *models.FileUpload,
) ([]models.RawEntity, error) {
	requestID := uuid.New().String()
	log.WithFields(logrus.Fields{
		"request_id": requestID,
		"filename":   upload.Filename,
		"mime_type":  upload.MIMEType,
		"bytes":      len(upload.Content),
	}).Debug("sending document for processing")

	thisCtx, cancel := context.WithTimeout(ctx, DocAIAPITimeout)
	defer cancel()

	req := &documentaipb.ProcessRequest{
		Name: e.processorName,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  upload.Content,
				MimeType: upload.MIMEType,
			},
		},
	}

	respVal, err := failsafe.Get(func() (any, error) {
		return e.client.ProcessDocument(thisCtx, req)
	}, e.retryPolicy)
	if err != nil {
		return nil, NewProviderError("error processing document", err)
	}
	resp, ok := respVal.(*documentaipb.ProcessResponse)
	if !ok {
		return nil, NewProviderError("unexpected process response type", nil)
	}

	doc := resp.GetDocument()
	entities := append(entitiesFromDocument(doc), entitiesFromFormFields(doc)...)

	log.WithFields(logrus.Fields{
		"request_id": requestID,
		"entities":   len(entities),
	}).Debug("document processed")

	return entities, nil
}

func (e *DocAIExtractor) Close() error {
	return e.client.Close()
}

// entitiesFromDocument flattens the provider's entity list.
func entitiesFromDocument(doc *documentaipb.Document) []models.RawEntity {
	entities := make([]models.RawEntity, 0, len(doc.GetEntities()))
	for _, entity := range doc.GetEntities() {
		entities = append(entities, models.RawEntity{
			Type: entity.GetType(),
			Text: entity.GetMentionText(),
		})
	}
	return entities
}

// entitiesFromFormFields flattens the form fields of every page. Callers
// append these after the entity list so that form field values win
// during normalization.
func entitiesFromFormFields(doc *documentaipb.Document) []models.RawEntity {
	var entities []models.RawEntity
	for _, page := range doc.GetPages() {
		for _, field := range page.GetFormFields() {
			entities = append(entities, models.RawEntity{
				Type: field.GetFieldName().GetTextAnchor().GetContent(),
				Text: field.GetFieldValue().GetTextAnchor().GetContent(),
			})
		}
	}
	return entities
}
