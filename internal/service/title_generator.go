package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/llm"
	"dog-personality-quiz/internal/metrics"
)

const (
	minTitleLength = 10
	maxTitleLength = 80
)

var (
	titleQuotes = regexp.MustCompile(`^["']|["']$`)
	titlePrefix = regexp.MustCompile(`^\w+:\s*`)
)

// TitleGenerator pide al LLM un título corto; nunca devuelve error.
type TitleGenerator struct {
	llmClient llm.LLMClient
	timeout   time.Duration
	logger    *zap.Logger
	metrics   *metrics.Pipeline
}

func NewTitleGenerator(llmClient llm.LLMClient, timeout time.Duration, logger *zap.Logger, m *metrics.Pipeline) *TitleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &TitleGenerator{
		llmClient: llmClient,
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
	}
}

// Generate usa los dos rasgos con mayor puntaje. Si el LLM falla o devuelve
// un texto fuera de [10, 80] caracteres, usa "<nombre> is a <etiqueta top>".
func (g *TitleGenerator) Generate(ctx context.Context, session domain.Session, scores domain.Scores) string {
	top := TopTraits(scores, 2)
	fallback := fallbackTitle(session, top)
	if g.llmClient == nil || len(top) == 0 {
		g.metrics.TitleFallback()
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.llmClient.Generate(ctx, buildTitlePrompt(session, top))
	if err != nil {
		g.logger.Warn("title generation failed, using fallback",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
		g.metrics.TitleFallback()
		return fallback
	}

	title := cleanTitle(raw)
	if n := utf8.RuneCountInString(title); n < minTitleLength || n > maxTitleLength {
		g.logger.Warn("title out of bounds, using fallback",
			zap.String("session_id", session.ID),
			zap.Int("length", n),
		)
		g.metrics.TitleFallback()
		return fallback
	}
	return title
}

func cleanTitle(raw string) string {
	title := stripModelWrapping(raw)
	title = titleQuotes.ReplaceAllString(title, "")
	title = titlePrefix.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

func fallbackTitle(session domain.Session, top []RankedTrait) string {
	label := "Good Dog"
	if len(top) > 0 {
		label = top[0].Label
	}
	return fmt.Sprintf("%s is a %s", session.DogName, label)
}

func buildTitlePrompt(session domain.Session, top []RankedTrait) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a fun, engaging personality title for a dog named %s (%s) based on their top personality traits:\n\n",
		session.DogName, session.BreedOrDefault())
	fmt.Fprintf(&b, "Top trait: %s (%s)\n", top[0].Trait, top[0].Label)
	if len(top) > 1 {
		fmt.Fprintf(&b, "Second trait: %s (%s)\n", top[1].Trait, top[1].Label)
	}
	b.WriteString(`
Examples:
- "Fluffy is a Lovable Mischief Maker"
- "Max is a Loyal Adventure Buddy"
- "Bella is a Smart and Snuggly Sweetheart"

`)
	fmt.Fprintf(&b, "Create a similar title that captures %s's unique personality. Keep it under 8 words and make it catchy!\n\n", session.DogName)
	b.WriteString("Return ONLY the title, nothing else.")
	return b.String()
}
