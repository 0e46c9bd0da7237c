package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"dog-personality-quiz/internal/domain"
)

type AnswerRepository interface {
	Upsert(ctx context.Context, answer domain.Answer) error
	ListPairsBySessionID(ctx context.Context, sessionID string) ([]domain.QAPair, error)
}

type PgAnswerRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnswerRepository(pool *pgxpool.Pool) *PgAnswerRepository {
	return &PgAnswerRepository{pool: pool}
}

// Upsert reemplaza la respuesta previa de la pregunta; nunca duplica.
func (r *PgAnswerRepository) Upsert(ctx context.Context, answer domain.Answer) error {
	const query = `
		INSERT INTO quiz_answers (id, question_id, selected_option, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (question_id)
		DO UPDATE SET
			selected_option = EXCLUDED.selected_option,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		answer.ID,
		answer.QuestionID,
		answer.SelectedOption,
		answer.CreatedAt,
		answer.UpdatedAt,
	)
	return err
}

// ListPairsBySessionID devuelve los pares respondidos en orden de pregunta.
func (r *PgAnswerRepository) ListPairsBySessionID(ctx context.Context, sessionID string) ([]domain.QAPair, error) {
	const query = `
		SELECT q.text, a.selected_option
		FROM quiz_questions q
		JOIN quiz_answers a ON a.question_id = q.id
		WHERE q.session_id = $1
		ORDER BY q.order_index ASC
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []domain.QAPair
	for rows.Next() {
		var p domain.QAPair
		if err := rows.Scan(&p.Question, &p.Answer); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
