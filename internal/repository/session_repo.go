package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"dog-personality-quiz/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	GetBySlug(ctx context.Context, slug string) (domain.Session, error)
}

type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) Create(ctx context.Context, session domain.Session) error {
	const query = `
		INSERT INTO quiz_sessions (id, slug, dog_name, breed, age, gender, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.Slug,
		session.DogName,
		nullableText(session.Breed),
		nullableText(session.Age),
		nullableText(session.Gender),
		session.CreatedAt,
	)
	return err
}

func (r *PgSessionRepository) GetBySlug(ctx context.Context, slug string) (domain.Session, error) {
	const query = `
		SELECT id, slug, dog_name, COALESCE(breed, ''), COALESCE(age, ''), COALESCE(gender, ''), COALESCE(photo_url, ''), created_at
		FROM quiz_sessions
		WHERE slug = $1
	`
	var session domain.Session
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&session.ID,
		&session.Slug,
		&session.DogName,
		&session.Breed,
		&session.Age,
		&session.Gender,
		&session.PhotoURL,
		&session.CreatedAt,
	)
	if err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func nullableText(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
