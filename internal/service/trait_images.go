package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/llm"
	"dog-personality-quiz/internal/metrics"
)

// ImageStore guarda los bytes de una imagen bajo una clave y devuelve la
// referencia durable que se persiste en el resultado.
type ImageStore interface {
	Save(ctx context.Context, key string, data []byte) (string, error)
}

// TraitImageService genera y guarda una imagen por rasgo. Cada rasgo falla
// por su cuenta y cae en su placeholder; nunca devuelve error.
type TraitImageService struct {
	images          llm.ImageGenerator
	store           ImageStore
	timeout         time.Duration
	concurrency     int
	placeholderBase string
	logger          *zap.Logger
	metrics         *metrics.Pipeline
}

func NewTraitImageService(
	images llm.ImageGenerator,
	store ImageStore,
	timeout time.Duration,
	concurrency int,
	placeholderBase string,
	logger *zap.Logger,
	m *metrics.Pipeline,
) *TraitImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &TraitImageService{
		images:          images,
		store:           store,
		timeout:         timeout,
		concurrency:     concurrency,
		placeholderBase: strings.TrimRight(placeholderBase, "/"),
		logger:          logger,
		metrics:         m,
	}
}

// GenerateAll lanza un pedido por rasgo presente en scores, con a lo sumo
// concurrency pedidos en vuelo.
func (s *TraitImageService) GenerateAll(ctx context.Context, session domain.Session, scores domain.Scores) map[string]string {
	traits := make([]string, 0, len(scores))
	for _, trait := range domain.TraitOrder {
		if _, ok := scores[trait]; ok {
			traits = append(traits, trait)
		}
	}

	refs := make([]string, len(traits))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, trait := range traits {
		g.Go(func() error {
			refs[i] = s.GenerateOne(ctx, session, trait, scores[trait])
			return nil
		})
	}
	_ = g.Wait()

	images := make(map[string]string, len(traits))
	for i, trait := range traits {
		images[trait] = refs[i]
	}
	return images
}

// GenerateOne devuelve la referencia de la imagen guardada o el placeholder
// del rasgo.
func (s *TraitImageService) GenerateOne(ctx context.Context, session domain.Session, trait string, score domain.TraitScore) string {
	if s.images == nil || s.store == nil {
		s.metrics.ImageFallback(trait)
		return s.placeholderRef(trait)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ref, err := s.generateAndStore(ctx, session, trait, score)
	if err != nil {
		s.logger.Warn("trait image generation failed, using placeholder",
			zap.String("session_id", session.ID),
			zap.String("trait", trait),
			zap.Error(err),
		)
		s.metrics.ImageFallback(trait)
		return s.placeholderRef(trait)
	}
	return ref
}

func (s *TraitImageService) generateAndStore(ctx context.Context, session domain.Session, trait string, score domain.TraitScore) (string, error) {
	data, err := s.images.GenerateImage(ctx, buildImagePrompt(session, trait, score))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}
	ref, err := s.store.Save(ctx, imageKey(session.Slug, trait, time.Now()), data)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	if strings.TrimSpace(ref) == "" {
		return "", fmt.Errorf("empty image reference")
	}
	return ref, nil
}

func (s *TraitImageService) placeholderRef(trait string) string {
	if s.placeholderBase == "" {
		return PlaceholderKey(trait)
	}
	return s.placeholderBase + "/" + PlaceholderKey(trait)
}

// imageKey sigue el esquema results/<slug>-<trait>-<ms>.png; cada
// regeneración escribe un archivo nuevo.
func imageKey(slug, trait string, at time.Time) string {
	return fmt.Sprintf("results/%s-%s-%d.png", slug, trait, at.UnixMilli())
}

func buildImagePrompt(session domain.Session, trait string, score domain.TraitScore) string {
	return fmt.Sprintf("A cute %s dog expressing %s, %s, %s, cartoon style, colorful, cheerful, high quality",
		session.BreedOrDefault(), trait, strings.ToLower(score.Label), score.Description)
}
