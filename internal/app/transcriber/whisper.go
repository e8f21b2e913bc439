package transcriber

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"notary-api/internal/app/metrics"
	"notary-api/internal/app/model"
)

// WhisperTranscriber implements Transcriber against the OpenAI Whisper API.
type WhisperTranscriber struct {
	client *openai.Client
}

// NewWhisperTranscriber creates a WhisperTranscriber with the given API key.
// baseURL overrides the API endpoint when non-empty, for proxies and
// OpenAI-compatible servers.
func NewWhisperTranscriber(apiKey, baseURL string) *WhisperTranscriber {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &WhisperTranscriber{client: openai.NewClientWithConfig(config)}
}

// Transcript sends one audio chunk to Whisper and returns the text.
func (wt *WhisperTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: inputFilePath,
	}

	start := time.Now()
	resp, err := wt.client.CreateTranscription(ctx, req)
	metrics.ProviderLatency.WithLabelValues(model.ProviderOpenAI).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %s", err)
	}

	return resp.Text, nil
}
