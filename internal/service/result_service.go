package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/metrics"
	"dog-personality-quiz/internal/repository"
)

// ResultView es lo que ve quien comparte el resultado.
type ResultView struct {
	Session domain.Session  `json:"session"`
	Result  domain.Result   `json:"results"`
	Pairs   []domain.QAPair `json:"qa_pairs"`
}

// ResultService orquesta scoring, título, imágenes y persistencia. Genera a
// lo sumo un resultado por sesión: lee antes de escribir y, si la escritura
// choca con la restricción única, vuelve a leer.
type ResultService struct {
	sessions repository.SessionRepository
	answers  repository.AnswerRepository
	results  repository.ResultRepository
	profiler *TraitProfiler
	titles   *TitleGenerator
	images   *TraitImageService
	cache    ResultCache
	limiter  RateLimiter
	logger   *zap.Logger
	metrics  *metrics.Pipeline
}

func NewResultService(
	sessions repository.SessionRepository,
	answers repository.AnswerRepository,
	results repository.ResultRepository,
	profiler *TraitProfiler,
	titles *TitleGenerator,
	images *TraitImageService,
	cache ResultCache,
	limiter RateLimiter,
	logger *zap.Logger,
	m *metrics.Pipeline,
) *ResultService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if profiler == nil {
		profiler = NewTraitProfiler(nil)
	}
	if titles == nil {
		titles = NewTitleGenerator(nil, 0, logger, m)
	}
	if images == nil {
		images = NewTraitImageService(nil, nil, 0, 1, "", logger, m)
	}
	return &ResultService{
		sessions: sessions,
		answers:  answers,
		results:  results,
		profiler: profiler,
		titles:   titles,
		images:   images,
		cache:    cache,
		limiter:  limiter,
		logger:   logger,
		metrics:  m,
	}
}

// Generate devuelve el resultado de la sesión, creándolo si no existe.
// Solo los errores del store son fatales; título e imágenes siempre tienen
// fallback.
func (s *ResultService) Generate(ctx context.Context, slug string) (domain.Result, error) {
	session, err := loadSession(ctx, s.sessions, slug)
	if err != nil {
		return domain.Result{}, err
	}

	existing, found, err := s.existingResult(ctx, session.ID)
	if err != nil {
		return domain.Result{}, err
	}
	if found {
		s.metrics.ResultReused()
		return existing, nil
	}

	pairs, err := s.answers.ListPairsBySessionID(ctx, session.ID)
	if err != nil {
		return domain.Result{}, storeError("list answers", err)
	}

	scores := s.profiler.Build(pairs)
	title := s.titles.Generate(ctx, session, scores)
	images := s.images.GenerateAll(ctx, session, scores)

	result := domain.Result{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Title:     title,
		Summary:   summaryFor(session),
		Scores:    scores,
		Images:    images,
		CreatedAt: storeTime(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		if !errors.Is(err, repository.ErrResultExists) {
			return domain.Result{}, storeError("create result", err)
		}
		// Otra request generó primero; su resultado es el válido.
		s.logger.Info("result created concurrently, returning stored one", zap.String("session_id", session.ID))
		winner, found, err := s.existingResult(ctx, session.ID)
		if err != nil {
			return domain.Result{}, err
		}
		if !found {
			return domain.Result{}, storeError("reload result", pgx.ErrNoRows)
		}
		s.metrics.ResultReused()
		return winner, nil
	}

	s.invalidate(ctx, session.Slug)
	s.metrics.ResultGenerated()
	s.logger.Info("result generated",
		zap.String("session_id", session.ID),
		zap.Int("answered", len(pairs)),
	)
	return result, nil
}

// GetResult arma la vista pública; ErrResultNotFound hasta que exista.
func (s *ResultService) GetResult(ctx context.Context, slug string) (ResultView, error) {
	slug = strings.TrimSpace(slug)
	if s.cache != nil {
		if view, ok := s.cache.Get(ctx, slug); ok {
			return view, nil
		}
	}

	session, err := loadSession(ctx, s.sessions, slug)
	if err != nil {
		return ResultView{}, err
	}
	result, found, err := s.existingResult(ctx, session.ID)
	if err != nil {
		return ResultView{}, err
	}
	if !found {
		return ResultView{}, ErrResultNotFound
	}
	pairs, err := s.answers.ListPairsBySessionID(ctx, session.ID)
	if err != nil {
		return ResultView{}, storeError("list answers", err)
	}
	if pairs == nil {
		pairs = []domain.QAPair{}
	}

	view := ResultView{Session: session, Result: result, Pairs: pairs}
	if s.cache != nil {
		s.cache.Set(ctx, slug, view)
	}
	return view, nil
}

// RegenerateImage reemplaza solo la imagen del rasgo pedido y devuelve la
// nueva referencia. La escritura es de una sola entrada en el store, no un
// read-modify-write del mapa completo.
func (s *ResultService) RegenerateImage(ctx context.Context, slug, trait string) (string, error) {
	trait = strings.TrimSpace(trait)
	if trait == "" {
		return "", fmt.Errorf("%w: trait is required", ErrInvalidInput)
	}

	session, err := loadSession(ctx, s.sessions, slug)
	if err != nil {
		return "", err
	}
	result, found, err := s.existingResult(ctx, session.ID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrResultNotFound
	}
	score, ok := result.Scores[trait]
	if !ok {
		return "", ErrUnknownTrait
	}
	if s.limiter != nil && !s.limiter.Allow("regenerate:"+session.Slug) {
		return "", ErrRateLimited
	}

	ref := s.images.GenerateOne(ctx, session, trait, score)

	if err := s.results.SetImage(ctx, session.ID, trait, ref); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrResultNotFound
		}
		return "", storeError("update images", err)
	}

	s.invalidate(ctx, session.Slug)
	s.metrics.ImageRegenerated(trait)
	return ref, nil
}

func (s *ResultService) existingResult(ctx context.Context, sessionID string) (domain.Result, bool, error) {
	result, err := s.results.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Result{}, false, nil
		}
		return domain.Result{}, false, storeError("get result", err)
	}
	return result, true, nil
}

func (s *ResultService) invalidate(ctx context.Context, slug string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, slug)
	}
}

func summaryFor(session domain.Session) string {
	return fmt.Sprintf("%s has completed the personality quiz!", session.DogName)
}
