package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"dog-personality-quiz/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

// schema es idempotente: cada arranque puede aplicarlo sin flags de proceso.
// Las restricciones UNIQUE sostienen la upsert de respuestas y el
// "a lo sumo un resultado por sesión".
const schema = `
CREATE TABLE IF NOT EXISTS quiz_sessions (
	id         UUID PRIMARY KEY,
	slug       TEXT NOT NULL UNIQUE,
	dog_name   TEXT NOT NULL,
	breed      TEXT,
	age        TEXT,
	gender     TEXT,
	photo_url  TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quiz_questions (
	id          UUID PRIMARY KEY,
	session_id  UUID NOT NULL REFERENCES quiz_sessions(id) ON DELETE CASCADE,
	text        TEXT NOT NULL,
	options     JSONB NOT NULL,
	order_index INT NOT NULL,
	UNIQUE (session_id, order_index)
);

CREATE TABLE IF NOT EXISTS quiz_answers (
	id              UUID PRIMARY KEY,
	question_id     UUID NOT NULL UNIQUE REFERENCES quiz_questions(id) ON DELETE CASCADE,
	selected_option TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quiz_results (
	id               UUID PRIMARY KEY,
	session_id       UUID NOT NULL UNIQUE REFERENCES quiz_sessions(id) ON DELETE CASCADE,
	title            TEXT NOT NULL,
	summary          TEXT NOT NULL,
	scores           JSONB NOT NULL,
	generated_images JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema crea las tablas del quiz si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
