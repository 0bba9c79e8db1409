package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel    = "gemini-1.5-flash"
)

// GeminiConfig configures the generateContent endpoint and HTTP behavior.
type GeminiConfig struct {
	Endpoint   string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

type geminiClient struct {
	cfg GeminiConfig
}

// NewGeminiClient builds a Generator backed by the Gemini generateContent
// API. Zero-value config fields fall back to defaults, the API key is
// required.
func NewGeminiClient(cfg GeminiConfig) Generator {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &geminiClient{cfg: cfg}
}

// NewGeminiClientFromEnv reads GEMINI_API_KEY, GEMINI_MODEL and
// GEMINI_ENDPOINT from the environment.
func NewGeminiClientFromEnv() Generator {
	return NewGeminiClient(GeminiConfig{
		Endpoint: os.Getenv("GEMINI_ENDPOINT"),
		APIKey:   os.Getenv("GEMINI_API_KEY"),
		Model:    os.Getenv("GEMINI_MODEL"),
	})
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal generateContent request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.Endpoint, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build generateContent request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call generative model")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read generateContent response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("generative model returned status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.Wrap(err, "decode generateContent response")
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generative model returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
