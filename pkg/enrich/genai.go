package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/openfauna/zoolist/pkg/errors"
)

// DefaultModel is the Gemini model used for animal lookups.
const DefaultModel = "gemini-2.0-flash"

const animalsPrompt = `List the notable animal species kept at "%s" in the United Kingdom.
Respond with a JSON array of species names only, no other text.
If you do not know this zoo, respond with [].`

// GenAIEnricher looks up animal lists with the Gemini API.
type GenAIEnricher struct {
	client *genai.Client
	model  string
}

// NewGenAIEnricher creates an enricher backed by the Gemini API.
// The API key is required.
func NewGenAIEnricher(ctx context.Context, apiKey, model string) (*GenAIEnricher, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GenAIEnricher{client: client, model: model}, nil
}

// Animals asks the model for the zoo's animal list.
func (g *GenAIEnricher) Animals(ctx context.Context, zooName string) ([]string, error) {
	prompt := fmt.Sprintf(animalsPrompt, zooName)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generating animal list for %q: %w", zooName, err)
	}

	return parseAnimalList(resp.Text())
}

// parseAnimalList decodes the model's reply, tolerating markdown fences
// around the JSON array.
func parseAnimalList(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var animals []string
	if err := json.Unmarshal([]byte(text), &animals); err != nil {
		return nil, errors.NewParseError("json", "", "model reply is not a JSON array", err)
	}
	return animals, nil
}
