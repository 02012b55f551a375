package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BoomMccloud/interviewer-pro-sub001/pkg"
)

type Repository struct {
	Session *SessionRepository
}

// NewRepository wires the repositories over a shared pool. crypto is
// optional; when set, job description and resume text are encrypted at
// rest (resumes are PII).
func NewRepository(db *pgxpool.Pool, crypto *pkg.Crypto) *Repository {
	return &Repository{
		Session: &SessionRepository{db: db, crypto: crypto},
	}
}

const createSessionsTableSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id             UUID PRIMARY KEY,
	user_id                UUID NOT NULL,
	persona_id             TEXT NOT NULL DEFAULT '',
	job_description        TEXT NOT NULL,
	resume                 TEXT NOT NULL DEFAULT '',
	segments               JSONB NOT NULL DEFAULT '[]',
	segments_schema        INT NOT NULL DEFAULT 1,
	current_question_index INT NOT NULL DEFAULT 0,
	question_budget        INT NOT NULL DEFAULT 3,
	end_time               TIMESTAMPTZ,
	version                BIGINT NOT NULL DEFAULT 1,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions (user_id);
`

// EnsureSchema creates the sessions table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.Session.db.Exec(ctx, createSessionsTableSQL); err != nil {
		return fmt.Errorf("ensure sessions schema: %w", err)
	}
	return nil
}
