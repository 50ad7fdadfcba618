package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-agent/internal/config"
)

// openAIProvider calls an OpenAI-compatible /audio/transcriptions endpoint.
type openAIProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type openAIResp struct {
	Text string `json:"text"`
}

// NewOpenAILoader returns a Loader for the hosted transcription API.
func NewOpenAILoader(cfg config.OpenAIConfig) Loader {
	return func(ctx context.Context) (Provider, error) {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai api key is not set")
		}
		return &openAIProvider{
			apiKey:  cfg.APIKey,
			model:   cfg.Model,
			baseURL: strings.TrimRight(cfg.BaseURL, "/"),
			client:  &http.Client{Timeout: 60 * time.Minute},
		}, nil
	}
}

func (o *openAIProvider) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", o.model); err != nil {
		return "", err
	}
	if language != "" {
		if err := mw.WriteField("language", language); err != nil {
			return "", err
		}
	}

	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call transcription api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("openai http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var or openAIResp
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	return strings.TrimSpace(or.Text), nil
}
