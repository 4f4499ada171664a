package transcribe

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	geminiModel   = "gemini-2.0-flash"
	geminiTimeout = 60 * time.Second
)

const transcribePrompt = "Transcribe the following audio recording. " +
	"Return only the transcribed text, without commentary."

// Gemini implements Transcriber using Google's Gemini API.
type Gemini struct {
	client *genai.Client
	log    *logrus.Logger
}

func NewGemini(ctx context.Context, apiKey string, log *logrus.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, log: log}, nil
}

func (g *Gemini) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcribePrompt),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no transcription generated")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	if text == "" {
		return "", fmt.Errorf("empty transcription")
	}

	g.log.WithField("bytes", len(audio)).Debug("audio transcribed")
	return text, nil
}
