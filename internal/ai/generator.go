package ai

import (
	"context"
	"fmt"
	"strings"
)

const defaultMaxPromptRunes = 24000

// Generator shapes the three analysis request types against one underlying
// chat-completions capability. It does no caching, chunking, or retrying;
// callers decide how to handle a failed call.
type Generator struct {
	client         *Client
	config         ChatConfig
	maxPromptRunes int
}

func NewGenerator(client *Client, config ChatConfig, maxPromptRunes int) *Generator {
	if maxPromptRunes <= 0 {
		maxPromptRunes = defaultMaxPromptRunes
	}
	return &Generator{
		client:         client,
		config:         config,
		maxPromptRunes: maxPromptRunes,
	}
}

// Model reports the configured model name, for audit records.
func (g *Generator) Model() string {
	return g.config.Model
}

func (g *Generator) Summarize(ctx context.Context, text string) (string, error) {
	out, err := g.client.Complete(ctx, g.config, buildSummaryMessages(text, g.maxPromptRunes))
	if err != nil {
		return "", fmt.Errorf("summarize failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (g *Generator) DetectBias(ctx context.Context, text string) (string, error) {
	out, err := g.client.Complete(ctx, g.config, buildBiasMessages(text, g.maxPromptRunes))
	if err != nil {
		return "", fmt.Errorf("detect bias failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (g *Generator) AnswerQuestion(ctx context.Context, text, question string) (string, error) {
	out, err := g.client.Complete(ctx, g.config, buildQuestionMessages(text, question, g.maxPromptRunes))
	if err != nil {
		return "", fmt.Errorf("answer question failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}
