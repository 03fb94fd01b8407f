// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer produces a grounded answer to a question about a single
// document via the Gemini API.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pdiddy/docgather/pkg/types"
)

// Instruction is sent with every request, after the question.
const Instruction = "Be thorough. Include all relevant context of the question, " +
	"the document, and anything else in the answer. Use numbers and statistics."

const defaultModel = "gemini-1.5-flash"

// Answerer answers a question about one document. The pipeline and the
// tests substitute their own implementations.
type Answerer interface {
	Answer(ctx context.Context, question string, doc []byte) (string, error)
}

// Gemini answers questions by sending the document as a PDF content part
// alongside the question and the fixed instruction.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini answerer from cfg. The returned client holds a
// connection and must be closed.
func NewGemini(ctx context.Context, cfg types.AnswerConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Answer issues one generation request and returns the answer text. Errors
// are returned to the caller; the pipeline converts them into an empty
// answer so one document's failure never aborts a batch.
func (g *Gemini) Answer(ctx context.Context, question string, doc []byte) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, buildParts(question, doc)...)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return responseText(resp), nil
}

// buildParts packages the document, the question, and the fixed instruction
// as the content parts of one request. The document always goes out typed
// application/pdf, matching what the pipeline downloads by default.
func buildParts(question string, doc []byte) []genai.Part {
	return []genai.Part{
		genai.Blob{MIMEType: "application/pdf", Data: doc},
		genai.Text(question),
		genai.Text(Instruction),
	}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
