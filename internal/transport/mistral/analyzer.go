// Package mistral extracts selection criteria from tender documents via an
// OpenAI-compatible chat completion endpoint (Mistral by default). Provider
// failures never fail an analysis: a deterministic keyword fallback covers
// short documents, broken answers and outages alike.
package mistral

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/panel-entreprises/panelmatch"
	"github.com/panel-entreprises/panelmatch/internal/metrics"
)

// minDocumentLen is the document size below which the provider is not
// worth asking.
const minDocumentLen = 100

// maxPromptChars bounds the document sample included in the prompt.
const maxPromptChars = 6000

// AttributionCriterion is a scoring axis for offers, weighted in percent.
// Weights always total 100 after validation.
type AttributionCriterion struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Analysis is the structured result of a document analysis.
type Analysis struct {
	Keywords            []string               `json:"keywords"`
	SelectionCriteria   []panelmatch.Criterion `json:"selectionCriteria"`
	AttributionCriteria []AttributionCriterion `json:"attributionCriteria"`
}

// Analyzer calls the chat completion API to analyze tender documents.
type Analyzer struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// Config holds the extraction provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Logger      *zap.Logger
}

// NewAnalyzer creates a document analyzer against an OpenAI-compatible
// endpoint.
func NewAnalyzer(cfg *Config) *Analyzer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		logger:      logger,
	}
}

// Analyze extracts keywords, selection criteria and attribution criteria
// from a tender document. It always returns a usable analysis: provider
// errors degrade to the fallback, never to an empty result.
func (a *Analyzer) Analyze(ctx context.Context, document string) Analysis {
	trimmed := strings.TrimSpace(document)
	a.logger.Info("analyzing document", zap.Int("chars", len(trimmed)))

	if len(trimmed) < minDocumentLen {
		a.logger.Warn("document too short, using fallback analysis")
		metrics.ExtractionFallbacksTotal.Inc()
		return fallbackAnalysis(trimmed)
	}

	answer, err := a.complete(ctx, analysisPrompt(trimmed))
	if err != nil {
		a.logger.Error("extraction request failed", zap.Error(err))
		metrics.ExtractionFallbacksTotal.Inc()
		return fallbackAnalysis(trimmed)
	}

	analysis, err := parseAnalysis(answer)
	if err != nil {
		a.logger.Error("extraction answer unusable", zap.Error(err))
		metrics.ExtractionFallbacksTotal.Inc()
		return fallbackAnalysis(trimmed)
	}

	a.logger.Info("analysis complete",
		zap.Int("keywords", len(analysis.Keywords)),
		zap.Int("selection_criteria", len(analysis.SelectionCriteria)),
		zap.Int("attribution_criteria", len(analysis.AttributionCriteria)),
	)
	return analysis
}

// complete runs one chat completion and returns the answer text.
func (a *Analyzer) complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: a.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})

	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues(a.model, "error").Inc()
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.ExtractionRequestsTotal.WithLabelValues(a.model, "error").Inc()
		return "", fmt.Errorf("chat completion returned no choices")
	}

	answer := resp.Choices[0].Message.Content
	if len(strings.TrimSpace(answer)) <= 10 {
		metrics.ExtractionRequestsTotal.WithLabelValues(a.model, "error").Inc()
		return "", fmt.Errorf("chat completion answer too short: %q", answer)
	}

	metrics.ExtractionRequestsTotal.WithLabelValues(a.model, "success").Inc()
	metrics.ExtractionRequestDuration.WithLabelValues(a.model).Observe(time.Since(start).Seconds())
	return answer, nil
}

// analysisPrompt builds the French extraction prompt around a document
// sample.
func analysisPrompt(document string) string {
	sample := document
	if len(sample) > maxPromptChars {
		cut := maxPromptChars
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}

	return fmt.Sprintf(`Analysez ce cahier des charges pour un projet industriel et extrayez UNIQUEMENT les informations suivantes au format JSON.

DOCUMENT À ANALYSER:
%s

INSTRUCTIONS:
1. Identifiez les mots-clés principaux du projet (5-10 mots)
2. Identifiez les critères de sélection pertinents pour les entreprises
3. Identifiez les critères d'attribution et leur pondération (total = 100%%)

Répondez UNIQUEMENT avec le format JSON suivant:
{
    "keywords": ["mot1", "mot2", "mot3", "mot4", "mot5"],
    "selectionCriteria": [
        {"id": 1, "name": "Nom du critère", "description": "Description détaillée du critère", "selected": true},
        {"id": 2, "name": "Autre critère", "description": "Description détaillée", "selected": true}
    ],
    "attributionCriteria": [
        {"id": 1, "name": "Prix", "weight": 40},
        {"id": 2, "name": "Valeur technique", "weight": 35},
        {"id": 3, "name": "Délai", "weight": 25}
    ]
}

Le JSON doit être valide et complet.`, sample)
}
