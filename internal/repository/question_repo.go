package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dog-personality-quiz/internal/domain"
)

type QuestionRepository interface {
	CreateBatch(ctx context.Context, questions []domain.Question) error
	ListBySessionID(ctx context.Context, sessionID string) ([]domain.Question, error)
	GetByID(ctx context.Context, id string) (domain.Question, error)
}

type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

// CreateBatch inserta todas las preguntas en un solo round-trip. Si otra
// request ya materializó las preguntas de la sesión, el UNIQUE
// (session_id, order_index) descarta los duplicados sin error.
func (r *PgQuestionRepository) CreateBatch(ctx context.Context, questions []domain.Question) error {
	const query = `
		INSERT INTO quiz_questions (id, session_id, text, options, order_index)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, order_index) DO NOTHING
	`
	batch := &pgx.Batch{}
	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("marshal options: %w", err)
		}
		batch.Queue(query, q.ID, q.SessionID, q.Text, options, q.OrderIndex)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *PgQuestionRepository) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Question, error) {
	const query = `
		SELECT id, session_id, text, options, order_index
		FROM quiz_questions
		WHERE session_id = $1
		ORDER BY order_index ASC
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func (r *PgQuestionRepository) GetByID(ctx context.Context, id string) (domain.Question, error) {
	const query = `
		SELECT id, session_id, text, options, order_index
		FROM quiz_questions
		WHERE id = $1
	`
	var q domain.Question
	var options []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&q.ID, &q.SessionID, &q.Text, &options, &q.OrderIndex)
	if err != nil {
		return domain.Question{}, err
	}
	if err := json.Unmarshal(options, &q.Options); err != nil {
		return domain.Question{}, fmt.Errorf("decode options: %w", err)
	}
	return q, nil
}

func scanQuestions(rows pgxRows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var options []byte
		if err := rows.Scan(&q.ID, &q.SessionID, &q.Text, &options, &q.OrderIndex); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

// pgxRows is a minimal interface to allow scanning from pgx rows and simplify testing.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
