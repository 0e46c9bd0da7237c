package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"dog-personality-quiz/internal/domain"
)

func newQuizFixture() (*QuizService, *mockSessionRepo, *mockQuestionRepo, *mockAnswerRepo) {
	sessions := newMockSessionRepo(domain.Session{ID: "s1", Slug: "abc123", DogName: "Rex"})
	questions := &mockQuestionRepo{}
	answers := &mockAnswerRepo{}
	svc := NewQuizService(sessions, questions, answers, NewSessionTokenService("secret", time.Hour), nil, nil)
	return svc, sessions, questions, answers
}

func TestQuizService_StartSession(t *testing.T) {
	svc, sessions, _, _ := newQuizFixture()

	started, err := svc.StartSession(context.Background(), StartSessionInput{DogName: "  Luna ", Breed: "Husky"})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if len(started.Slug) != 12 {
		t.Fatalf("unexpected slug %q", started.Slug)
	}
	stored, ok := sessions.sessions[started.Slug]
	if !ok || stored.DogName != "Luna" || stored.Breed != "Husky" {
		t.Fatalf("unexpected stored session %+v", stored)
	}
	if err := svc.tokens.Verify(started.Token, started.Slug); err != nil {
		t.Fatalf("expected token bound to slug: %v", err)
	}
}

func TestQuizService_StartSessionErrors(t *testing.T) {
	svc, sessions, _, _ := newQuizFixture()

	if _, err := svc.StartSession(context.Background(), StartSessionInput{DogName: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("validation errors must not create sessions")
	}

	sessions.createErr = errors.New("db down")
	if _, err := svc.StartSession(context.Background(), StartSessionInput{DogName: "Luna"}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestQuizService_StartSessionWithoutTokens(t *testing.T) {
	svc := NewQuizService(newMockSessionRepo(), &mockQuestionRepo{}, &mockAnswerRepo{}, nil, nil, nil)
	started, err := svc.StartSession(context.Background(), StartSessionInput{DogName: "Luna"})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if started.Token != "" {
		t.Fatalf("expected no token, got %q", started.Token)
	}
}

func TestQuizService_QuestionsMaterializeOnce(t *testing.T) {
	svc, _, questions, _ := newQuizFixture()
	ctx := context.Background()

	first, err := svc.Questions(ctx, "abc123")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(first) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(first))
	}
	for i, q := range first {
		if q.OrderIndex != i+1 || q.SessionID != "s1" {
			t.Fatalf("unexpected question %d: %+v", i, q)
		}
	}

	second, err := svc.Questions(ctx, "abc123")
	if err != nil {
		t.Fatalf("questions again: %v", err)
	}
	if questions.createCalls != 1 {
		t.Fatalf("expected a single materialization, got %d", questions.createCalls)
	}
	if second[0].ID != first[0].ID {
		t.Fatalf("expected stored questions to be reused")
	}
}

func TestQuizService_QuestionsErrors(t *testing.T) {
	svc, _, questions, _ := newQuizFixture()
	if _, err := svc.Questions(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	questions.listErr = errors.New("db down")
	if _, err := svc.Questions(context.Background(), "abc123"); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestQuizService_SubmitAnswer(t *testing.T) {
	svc, _, questions, answers := newQuizFixture()
	ctx := context.Background()

	qs, err := svc.Questions(ctx, "abc123")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	q := qs[0]

	if err := svc.SubmitAnswer(ctx, "abc123", q.ID, q.Options[0]); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := svc.SubmitAnswer(ctx, "abc123", q.ID, q.Options[2]); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if len(answers.answers) != 1 || answers.answers[q.ID].SelectedOption != q.Options[2] {
		t.Fatalf("expected resubmission to replace the answer, got %+v", answers.answers)
	}

	foreign := domain.Question{ID: uuid.NewString(), SessionID: "other", Text: "x", Options: []string{"a"}, OrderIndex: 1}
	questions.questions = append(questions.questions, foreign)

	cases := []struct {
		name       string
		slug       string
		questionID string
		option     string
		want       error
	}{
		{name: "missing question id", slug: "abc123", option: "a", want: ErrInvalidInput},
		{name: "missing option", slug: "abc123", questionID: q.ID, want: ErrInvalidInput},
		{name: "malformed question id", slug: "abc123", questionID: "not-a-uuid", option: "a", want: ErrQuestionNotFound},
		{name: "unknown question", slug: "abc123", questionID: uuid.NewString(), option: "a", want: ErrQuestionNotFound},
		{name: "question of another session", slug: "abc123", questionID: foreign.ID, option: "a", want: ErrQuestionNotFound},
		{name: "option outside the closed set", slug: "abc123", questionID: q.ID, option: "Barks at the moon", want: ErrInvalidOption},
		{name: "unknown session", slug: "missing", questionID: q.ID, option: q.Options[0], want: ErrSessionNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.SubmitAnswer(ctx, tc.slug, tc.questionID, tc.option); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	answers.upsertErr = errors.New("db down")
	if err := svc.SubmitAnswer(ctx, "abc123", q.ID, q.Options[1]); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
