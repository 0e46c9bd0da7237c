package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/llm"
	"dog-personality-quiz/internal/repository"
)

const chatFallbackReply = "I would be happy to tell you more about your dog's personality! Could you ask me something specific?"

// ChatService responde preguntas libres sobre un resultado ya generado. No
// guarda historial.
type ChatService struct {
	sessions  repository.SessionRepository
	results   repository.ResultRepository
	llmClient llm.LLMClient
	limiter   RateLimiter
	timeout   time.Duration
	logger    *zap.Logger
}

func NewChatService(
	sessions repository.SessionRepository,
	results repository.ResultRepository,
	llmClient llm.LLMClient,
	limiter RateLimiter,
	timeout time.Duration,
	logger *zap.Logger,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatService{
		sessions:  sessions,
		results:   results,
		llmClient: llmClient,
		limiter:   limiter,
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *ChatService) Chat(ctx context.Context, slug, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: a chat message is required", ErrInvalidInput)
	}

	session, err := loadSession(ctx, s.sessions, slug)
	if err != nil {
		return "", err
	}
	result, err := s.results.GetBySessionID(ctx, session.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrResultNotFound
		}
		return "", storeError("get result", err)
	}
	if s.limiter != nil && !s.limiter.Allow("chat:"+session.Slug) {
		return "", ErrRateLimited
	}
	if s.llmClient == nil {
		return "", ErrChatUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.llmClient.Generate(ctx, buildChatPrompt(session, result, message))
	if err != nil {
		s.logger.Warn("chat generation failed",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	}
	reply = stripModelWrapping(reply)
	if reply == "" {
		return chatFallbackReply, nil
	}
	return reply, nil
}

func buildChatPrompt(session domain.Session, result domain.Result, message string) string {
	traits := make([]string, 0, len(result.Scores))
	for _, trait := range domain.TraitOrder {
		if ts, ok := result.Scores[trait]; ok {
			traits = append(traits, fmt.Sprintf("%s: %s - %s", trait, ts.Label, ts.Description))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a dog personality expert. Based on the personality analysis for %s (%s), answer this question: %q\n\n",
		session.DogName, session.BreedOrDefault(), message)
	b.WriteString("Dog's personality profile:\n")
	fmt.Fprintf(&b, "- Overall title: %s\n", result.Title)
	fmt.Fprintf(&b, "- Traits: %s\n\n", strings.Join(traits, ", "))
	b.WriteString("Respond in a friendly, expert tone as if you're a professional dog behaviorist. Keep it engaging and insightful.")
	return b.String()
}
