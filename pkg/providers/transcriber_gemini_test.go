package providers

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestResponseText(t *testing.T) {
	testCases := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{
			name: "single text part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []genai.Part{genai.Text("ආයුබෝවන්")},
						},
					},
				},
			},
			expected: "ආයුබෝවන්",
		},
		{
			name: "multiple parts concatenated and trimmed",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []genai.Part{
								genai.Text("  hello "),
								genai.Text("world\n"),
							},
						},
					},
				},
			},
			expected: "hello world",
		},
		{
			name:     "nil response",
			resp:     nil,
			expected: "",
		},
		{
			name:     "no candidates",
			resp:     &genai.GenerateContentResponse{},
			expected: "",
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, responseText(tc.resp))
		})
	}
}
