// Package gemini はGoogle Gemini APIを使用したESGインサイト生成クライアントを提供します。
package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"esg_backend/internal/feature/esg/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiNarrator はGoogle Gemini APIを使用してESGプロファイルの要約を生成します。
type GeminiNarrator struct {
	client *genai.Client
	model  string
}

// GeminiNarratorがNarratorを実装していることをコンパイル時に検証します。
var _ usecase.Narrator = (*GeminiNarrator)(nil)

// NewGeminiNarrator はADCを使用してGeminiNarratorの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION
// もしくは GOOGLE_API_KEY が必要です。modelが空の場合はDefaultModelを使用します。
func NewGeminiNarrator(ctx context.Context, model string, hc *http.Client) (*GeminiNarrator, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{HTTPClient: hc})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiNarrator{client: client, model: model}, nil
}

// Narrate はプロンプトから要約テキストを生成します。
func (g *GeminiNarrator) Narrate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
