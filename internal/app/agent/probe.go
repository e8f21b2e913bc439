// Package agent verifies that an agent configuration can reach its
// provider. Probes make one cheap API call with the configured credentials.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
	"notary-api/internal/app/metrics"
	"notary-api/internal/app/model"
)

// Prober tests connectivity for one agent configuration.
type Prober interface {
	Probe(ctx context.Context, agent *model.AgentConfiguration) error
}

// ProviderProber dispatches probes by provider. Keys come from the
// environment rather than the agent row; api_key_secret_name only names
// which secret to use.
type ProviderProber struct {
	openAIKey string
	geminiKey string
}

func NewProviderProber(openAIKey, geminiKey string) *ProviderProber {
	return &ProviderProber{openAIKey: openAIKey, geminiKey: geminiKey}
}

func (p *ProviderProber) Probe(ctx context.Context, agent *model.AgentConfiguration) error {
	start := time.Now()
	defer func() {
		metrics.ProviderLatency.WithLabelValues(agent.Provider).Observe(time.Since(start).Seconds())
	}()

	switch agent.Provider {
	case model.ProviderOpenAI:
		return p.probeOpenAI(ctx, agent)
	case model.ProviderGoogleAI:
		return p.probeGoogleAI(ctx, agent)
	case model.ProviderBedrock:
		return fmt.Errorf("provider %s has no runtime integration", agent.Provider)
	default:
		return fmt.Errorf("unknown provider %s", agent.Provider)
	}
}

func (p *ProviderProber) probeOpenAI(ctx context.Context, agent *model.AgentConfiguration) error {
	if p.openAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not configured")
	}
	config := openai.DefaultConfig(p.openAIKey)
	if agent.APIBaseURL != "" {
		config.BaseURL = agent.APIBaseURL
	}
	client := openai.NewClientWithConfig(config)
	if _, err := client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai probe failed: %v", err)
	}
	return nil
}

func (p *ProviderProber) probeGoogleAI(ctx context.Context, agent *model.AgentConfiguration) error {
	if p.geminiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not configured")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.geminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("google ai client failed: %v", err)
	}
	if _, err := client.Models.GenerateContent(ctx, agent.ModelName, genai.Text("ping"), nil); err != nil {
		return fmt.Errorf("google ai probe failed: %v", err)
	}
	return nil
}
