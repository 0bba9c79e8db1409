package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeminiClientGenerateContent(t *testing.T) {
	var gotPath string
	var gotReq geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []struct {
				Content geminiContent `json:"content"`
			}{
				{Content: geminiContent{Parts: []geminiPart{{Text: `["Politik"]`}}}},
			},
		})
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key",
		Model:    "test-model",
	})

	text, err := client.GenerateContent(context.Background(), "classify this")
	require.NoError(t, err)
	require.Equal(t, `["Politik"]`, text)
	require.Equal(t, "/models/test-model:generateContent", gotPath)
	require.Len(t, gotReq.Contents, 1)
	require.Equal(t, "classify this", gotReq.Contents[0].Parts[0].Text)
}

func TestGeminiClientSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{Endpoint: srv.URL, APIKey: "k"})
	_, err := client.GenerateContent(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestGeminiClientRejectsEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(GeminiConfig{Endpoint: srv.URL, APIKey: "k"})
	_, err := client.GenerateContent(context.Background(), "p")
	require.Error(t, err)
}
