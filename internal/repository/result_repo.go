package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dog-personality-quiz/internal/domain"
)

// ErrResultExists indica que la sesión ya tiene resultado (UNIQUE session_id).
var ErrResultExists = errors.New("result already exists for session")

const pgUniqueViolation = "23505"

type ResultRepository interface {
	Create(ctx context.Context, result domain.Result) error
	GetBySessionID(ctx context.Context, sessionID string) (domain.Result, error)
	SetImage(ctx context.Context, sessionID, trait, ref string) error
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Create(ctx context.Context, result domain.Result) error {
	const query = `
		INSERT INTO quiz_results (id, session_id, title, summary, scores, generated_images, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	images, err := marshalImages(result.Images)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.SessionID,
		result.Title,
		result.Summary,
		scores,
		images,
		result.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrResultExists
	}
	return err
}

func (r *PgResultRepository) GetBySessionID(ctx context.Context, sessionID string) (domain.Result, error) {
	const query = `
		SELECT id, session_id, title, summary, scores, generated_images, created_at
		FROM quiz_results
		WHERE session_id = $1
	`
	var res domain.Result
	var scores, images []byte
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&res.ID,
		&res.SessionID,
		&res.Title,
		&res.Summary,
		&scores,
		&images,
		&res.CreatedAt,
	)
	if err != nil {
		return domain.Result{}, err
	}
	if err := json.Unmarshal(scores, &res.Scores); err != nil {
		return domain.Result{}, fmt.Errorf("decode scores: %w", err)
	}
	res.Images = map[string]string{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &res.Images); err != nil {
			return domain.Result{}, fmt.Errorf("decode images: %w", err)
		}
	}
	return res, nil
}

// SetImage reemplaza la imagen de un solo rasgo dentro del JSONB. La mezcla
// ocurre en la base, así dos regeneraciones de rasgos distintos no se pisan.
func (r *PgResultRepository) SetImage(ctx context.Context, sessionID, trait, ref string) error {
	const query = `
		UPDATE quiz_results
		SET generated_images = COALESCE(generated_images, '{}'::jsonb) || jsonb_build_object($2::text, $3::text)
		WHERE session_id = $1
	`
	tag, err := r.pool.Exec(ctx, query, sessionID, trait, ref)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func marshalImages(images map[string]string) ([]byte, error) {
	if images == nil {
		images = map[string]string{}
	}
	payload, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	return payload, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
