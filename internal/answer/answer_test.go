// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParts(t *testing.T) {
	doc := []byte("%PDF-1.4 fake")
	parts := buildParts("What is the voter turnout?", doc)
	require.Len(t, parts, 3)

	blob, ok := parts[0].(genai.Blob)
	require.True(t, ok, "first part must be the document blob")
	assert.Equal(t, "application/pdf", blob.MIMEType)
	assert.Equal(t, doc, blob.Data)

	assert.Equal(t, genai.Text("What is the voter turnout?"), parts[1])
	assert.Equal(t, genai.Text(Instruction), parts[2])
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{
			name: "no candidates",
			resp: &genai.GenerateContentResponse{},
			want: "",
		},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			want: "",
		},
		{
			name: "concatenates text parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{
						genai.Text("Turnout was "),
						genai.Text("54%."),
					}},
				}},
			},
			want: "Turnout was 54%.",
		},
		{
			name: "non-text parts skipped",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []genai.Part{
						genai.Blob{MIMEType: "image/png"},
						genai.Text("answer"),
					}},
				}},
			},
			want: "answer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseText(tt.resp))
		})
	}
}
