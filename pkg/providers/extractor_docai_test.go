package providers

import (
	"testing"
	"time"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getidex/idex/config"
	"github.com/getidex/idex/pkg/models"
	"github.com/getidex/idex/pkg/normalizer"
)

func testDocument() *documentaipb.Document {
	return &documentaipb.Document{
		Entities: []*documentaipb.Document_Entity{
			{Type: "full_name", MentionText: "Nimal Perera"},
			{Type: "nic_number", MentionText: "955691234V"},
			{Type: "issuing_office", MentionText: "Colombo"},
		},
		Pages: []*documentaipb.Document_Page{
			{
				FormFields: []*documentaipb.Document_Page_FormField{
					{
						FieldName: &documentaipb.Document_Page_Layout{
							TextAnchor: &documentaipb.Document_TextAnchor{
								Content: "Date of Birth",
							},
						},
						FieldValue: &documentaipb.Document_Page_Layout{
							TextAnchor: &documentaipb.Document_TextAnchor{
								Content: "1995-05-20",
							},
						},
					},
					{
						FieldName: &documentaipb.Document_Page_Layout{
							TextAnchor: &documentaipb.Document_TextAnchor{
								Content: "Name",
							},
						},
						FieldValue: &documentaipb.Document_Page_Layout{
							TextAnchor: &documentaipb.Document_TextAnchor{
								Content: "N. Perera",
							},
						},
					},
				},
			},
		},
	}
}

func TestEntitiesFromDocument(t *testing.T) {
	entities := entitiesFromDocument(testDocument())

	assert.Equal(t, []models.RawEntity{
		{Type: "full_name", Text: "Nimal Perera"},
		{Type: "nic_number", Text: "955691234V"},
		{Type: "issuing_office", Text: "Colombo"},
	}, entities)
}

func TestEntitiesFromDocumentNil(t *testing.T) {
	assert.Empty(t, entitiesFromDocument(nil))
}

func TestEntitiesFromFormFields(t *testing.T) {
	entities := entitiesFromFormFields(testDocument())

	assert.Equal(t, []models.RawEntity{
		{Type: "Date of Birth", Text: "1995-05-20"},
		{Type: "Name", Text: "N. Perera"},
	}, entities)
}

func TestEntitiesFromFormFieldsMissingValue(t *testing.T) {
	doc := &documentaipb.Document{
		Pages: []*documentaipb.Document_Page{
			{
				FormFields: []*documentaipb.Document_Page_FormField{
					{
						FieldName: &documentaipb.Document_Page_Layout{
							TextAnchor: &documentaipb.Document_TextAnchor{
								Content: "Name",
							},
						},
					},
				},
			},
		},
	}

	entities := entitiesFromFormFields(doc)

	require.Len(t, entities, 1)
	assert.Equal(t, models.RawEntity{Type: "Name", Text: ""}, entities[0])
}

// Flattening appends form fields after entities, so a form field naming
// the same logical field overrides the entity value in the final record.
func TestFlattenedDocumentNormalizes(t *testing.T) {
	doc := testDocument()
	entities := append(entitiesFromDocument(doc), entitiesFromFormFields(doc)...)

	record := normalizer.NormalizeAt(
		entities,
		time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, "N. Perera", record.Name)
	assert.Equal(t, "955691234V", record.ID)
	assert.Equal(t, "1995-05-20", record.DOB)
	assert.Equal(t, models.GenderFemale, record.Gender)
	require.NotNil(t, record.Age)
	assert.Equal(t, 29, *record.Age)
}

func TestProcessorName(t *testing.T) {
	cfg := &config.Config{
		DocAI: config.DocAIConfig{
			ProjectID:        "proj",
			Location:         "us",
			ProcessorID:      "proc",
			ProcessorVersion: "pretrained-foundation-model-v1.5-pro-2025-06-20",
		},
	}

	assert.Equal(
		t,
		"projects/proj/locations/us/processors/proc/processorVersions/pretrained-foundation-model-v1.5-pro-2025-06-20",
		processorName(cfg),
	)
}
