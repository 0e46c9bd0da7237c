package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"dog-personality-quiz/internal/domain"
	"dog-personality-quiz/internal/metrics"
	"dog-personality-quiz/internal/repository"
)

// QuizService maneja sesiones, preguntas y respuestas del quiz.
type QuizService struct {
	sessions  repository.SessionRepository
	questions repository.QuestionRepository
	answers   repository.AnswerRepository
	tokens    *SessionTokenService
	logger    *zap.Logger
	metrics   *metrics.Pipeline
}

func NewQuizService(
	sessions repository.SessionRepository,
	questions repository.QuestionRepository,
	answers repository.AnswerRepository,
	tokens *SessionTokenService,
	logger *zap.Logger,
	m *metrics.Pipeline,
) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizService{
		sessions:  sessions,
		questions: questions,
		answers:   answers,
		tokens:    tokens,
		logger:    logger,
		metrics:   m,
	}
}

type StartSessionInput struct {
	DogName string `json:"dog_name"`
	Breed   string `json:"breed"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
}

type StartedSession struct {
	Slug  string `json:"session_id"`
	Token string `json:"session_token,omitempty"`
}

func (s *QuizService) StartSession(ctx context.Context, in StartSessionInput) (StartedSession, error) {
	session := domain.Session{
		ID:        uuid.NewString(),
		Slug:      newSlug(),
		DogName:   strings.TrimSpace(in.DogName),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       strings.TrimSpace(in.Age),
		Gender:    strings.TrimSpace(in.Gender),
		CreatedAt: storeTime(),
	}
	if session.DogName == "" {
		return StartedSession{}, fmt.Errorf("%w: dog name is required", ErrInvalidInput)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return StartedSession{}, storeError("create session", err)
	}

	token, err := s.tokens.Issue(session.Slug)
	if err != nil {
		return StartedSession{}, fmt.Errorf("issue session token: %w", err)
	}
	s.logger.Info("quiz session started", zap.String("session_id", session.ID), zap.String("slug", session.Slug))
	return StartedSession{Slug: session.Slug, Token: token}, nil
}

// Questions materializa las preguntas estándar la primera vez que se piden.
// La existencia se decide en el store; ON CONFLICT cubre dos primeras
// lecturas concurrentes.
func (s *QuizService) Questions(ctx context.Context, slug string) ([]domain.Question, error) {
	session, err := loadSession(ctx, s.sessions, slug)
	if err != nil {
		return nil, err
	}

	existing, err := s.questions.ListBySessionID(ctx, session.ID)
	if err != nil {
		return nil, storeError("list questions", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	standard := StandardQuestions()
	batch := make([]domain.Question, 0, len(standard))
	for i, q := range standard {
		batch = append(batch, domain.Question{
			ID:         uuid.NewString(),
			SessionID:  session.ID,
			Text:       q.Text,
			Options:    q.Options,
			OrderIndex: i + 1,
		})
	}
	if err := s.questions.CreateBatch(ctx, batch); err != nil {
		return nil, storeError("create questions", err)
	}

	stored, err := s.questions.ListBySessionID(ctx, session.ID)
	if err != nil {
		return nil, storeError("list questions", err)
	}
	return stored, nil
}

// SubmitAnswer guarda o reemplaza la respuesta de una pregunta de la sesión.
func (s *QuizService) SubmitAnswer(ctx context.Context, slug, questionID, option string) error {
	questionID = strings.TrimSpace(questionID)
	option = strings.TrimSpace(option)
	if questionID == "" || option == "" {
		return fmt.Errorf("%w: question id and selected option are required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(questionID); err != nil {
		return ErrQuestionNotFound
	}

	session, err := loadSession(ctx, s.sessions, slug)
	if err != nil {
		return err
	}

	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrQuestionNotFound
		}
		return storeError("get question", err)
	}
	if question.SessionID != session.ID {
		return ErrQuestionNotFound
	}
	if !question.HasOption(option) {
		return ErrInvalidOption
	}

	now := storeTime()
	answer := domain.Answer{
		ID:             uuid.NewString(),
		QuestionID:     question.ID,
		SelectedOption: option,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.answers.Upsert(ctx, answer); err != nil {
		return storeError("upsert answer", err)
	}
	s.metrics.AnswerSubmitted()
	return nil
}

func loadSession(ctx context.Context, sessions repository.SessionRepository, slug string) (domain.Session, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Session{}, ErrSessionNotFound
	}
	session, err := sessions.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, ErrSessionNotFound
		}
		return domain.Session{}, storeError("get session", err)
	}
	return session, nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// storeTime redondea a microsegundos, la precisión de timestamptz, para que
// lo devuelto al crear sea idéntico a lo que se lee después.
func storeTime() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func newSlug() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
