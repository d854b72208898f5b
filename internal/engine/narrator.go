package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

//go:embed prompts/embellish.txt
var embellishPrompt string

var embellishTemplate = template.Must(template.New("embellish").Parse(embellishPrompt))

const maxNarrativeWords = 180

// Narrator rewrites first-visit narratives. Failures are not fatal: the
// engine falls back to the plain text.
type Narrator interface {
	Embellish(ctx context.Context, room, narrative string) (string, error)
}

// GeminiNarrator embellishes narratives with a Gemini model.
type GeminiNarrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiNarrator(ctx context.Context, apiKey, model string) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GeminiNarrator{
		client: client,
		model:  client.GenerativeModel(model),
	}, nil
}

func (n *GeminiNarrator) Close() error {
	return n.client.Close()
}

func (n *GeminiNarrator) Embellish(ctx context.Context, room, narrative string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Room      string
		Narrative string
		MaxWords  int
	}{
		Room:      room,
		Narrative: narrative,
		MaxWords:  maxNarrativeWords,
	}
	if err := embellishTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	out := strings.TrimSpace(string(text))
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("empty narrative returned from Gemini")
	}
	return out, nil
}
