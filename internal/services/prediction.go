package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/astromitra/astro-ai-go/internal/astro"
	"github.com/astromitra/astro-ai-go/internal/config"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// chatCompleter is the slice of the OpenAI client the prediction service
// uses. Tests swap in a stub.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// PredictionStore is the persistence surface for narrative responses.
type PredictionStore interface {
	Save(ctx context.Context, p *models.Prediction) error
}

// LLMError is returned when the narrative model fails on every attempt.
type LLMError struct {
	Attempts int
	Err      error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm request failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *LLMError) Unwrap() error { return e.Err }

const systemPrompt = `You are a Vedic astrology interpreter. You receive a
precomputed chart summary as JSON and answer the user's question from it.
Ground every statement in the summary fields; never invent placements.
When the sensitivity section marks a conclusion as uncertain, hedge that
conclusion explicitly. Answer in plain prose.`

const classifierPrompt = `You classify Vedic astrology questions into one
topic: career, marriage, health, travel, education, finance, property,
litigation, spirituality, family, children or general. Reply with the
single topic word and nothing else.`

// TopicGeneral is the fallback topic when classification fails or yields
// an unknown label.
const TopicGeneral = "general"

var predictionTopics = map[string]bool{
	"career": true, "marriage": true, "health": true, "travel": true,
	"education": true, "finance": true, "property": true, "litigation": true,
	"spirituality": true, "family": true, "children": true, TopicGeneral: true,
}

// PredictionService turns computed snapshots into narrative answers via
// the LLM. The chart math always comes from the engine; the model only
// interprets.
type PredictionService struct {
	client chatCompleter
	store  PredictionStore
	cfg    config.LLMConfig
	logger *logrus.Logger
}

// NewPredictionService creates a prediction service from configuration.
func NewPredictionService(cfg config.LLMConfig, store PredictionStore, logger *logrus.Logger) *PredictionService {
	if logger == nil {
		logger = logrus.New()
	}
	return &PredictionService{
		client: openai.NewClient(cfg.APIKey),
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Predict answers a question about a snapshot and persists the exchange.
// An empty topic is classified from the question first.
func (s *PredictionService) Predict(ctx context.Context, snapshot *models.CalcSnapshot, userID, profileID, topic, question string) (*models.Prediction, error) {
	if topic == "" {
		topic = s.ClassifyTopic(ctx, question)
	}
	payload, err := buildPayload(snapshot, topic, question)
	if err != nil {
		return nil, err
	}

	response, err := s.complete(ctx, payload)
	if err != nil {
		return nil, err
	}

	prediction := &models.Prediction{
		UserID:    userID,
		ProfileID: profileID,
		InputHash: snapshot.Meta.InputHash,
		Topic:     topic,
		Question:  question,
		Response:  response,
		Model:     s.cfg.Model,
	}
	if s.store != nil {
		if err := s.store.Save(ctx, prediction); err != nil {
			s.logger.WithField("error", err.Error()).Warn("Prediction persistence failed")
		}
	}
	return prediction, nil
}

// buildPayload flattens the snapshot into the user message. Only summary
// fields cross into the prompt, never the raw snapshot.
func buildPayload(snapshot *models.CalcSnapshot, topic, question string) (string, error) {
	summary := astro.Summarize(snapshot)
	data, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to encode chart summary: %w", err)
	}
	return fmt.Sprintf("Topic: %s\nQuestion: %s\nChart summary:\n%s", topic, question, data), nil
}

// ClassifyTopic labels a question with one of the fixed topics.
// Classification is advisory: failures and unknown labels fall back to
// the general topic rather than blocking the prediction.
func (s *PredictionService) ClassifyTopic(ctx context.Context, question string) string {
	req := openai.ChatCompletionRequest{
		Model:     s.cfg.Model,
		MaxTokens: 8,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifierPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()
	resp, err := s.client.CreateChatCompletion(reqCtx, req)
	if err != nil {
		s.logger.WithField("error", err.Error()).Warn("Topic classification failed")
		return TopicGeneral
	}
	if len(resp.Choices) == 0 {
		return TopicGeneral
	}

	topic := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	topic = strings.Trim(topic, `."`)
	if !predictionTopics[topic] {
		return TopicGeneral
	}
	return topic
}

func (s *PredictionService) requestTimeout() time.Duration {
	timeout := time.Duration(s.cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return timeout
}

func (s *PredictionService) complete(ctx context.Context, payload string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: float32(s.cfg.Temperature),
		MaxTokens:   s.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: payload},
		},
	}

	timeout := s.requestTimeout()

	var lastErr error
	attempts := s.cfg.MaxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := s.client.CreateChatCompletion(reqCtx, req)
		cancel()
		if err != nil {
			lastErr = err
			s.logger.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"error":   err.Error(),
			}).Warn("LLM request failed")
			continue
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			lastErr = errors.New("empty completion")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}
	return "", &LLMError{Attempts: attempts, Err: lastErr}
}
