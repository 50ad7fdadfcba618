package analyzer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
)

type geminiProvider struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Provider that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Provider, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	keys := make([]string, len(apiKeys))
	copy(keys, apiKeys)
	return &geminiProvider{
		apiKeys: keys,
		model:   model,
		logger:  log,
	}, nil
}

// Generate sends prompt to Gemini and returns the concatenated text parts.
// A rate-limited key hands the request to the next key; every other error
// is returned as is.
func (g *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(g.apiKeys) {
		idx, key := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateFrom(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateFrom(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		return g.reply(ctx, idx, result), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// reply extracts the answer text. An empty reply is passed on, not failed.
func (g *geminiProvider) reply(ctx context.Context, idx int, result *genai.GenerateContentResponse) string {
	text := responseText(result)
	if text == "" {
		g.logger.Warn(ctx, "Gemini returned no text with key %d", idx+1)
	}
	return text
}

func (g *geminiProvider) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateFrom advances past idx unless a concurrent caller already did.
func (g *geminiProvider) rotateFrom(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
