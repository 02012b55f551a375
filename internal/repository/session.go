package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
	"github.com/BoomMccloud/interviewer-pro-sub001/pkg"
)

// SessionRepository is the Postgres-backed interview.Store. Segments
// live in one JSONB column tagged with a schema version; the current
// index and end time are written in the same statement, so a session is
// always read and written as one atomic record.
type SessionRepository struct {
	db     *pgxpool.Pool
	crypto *pkg.Crypto
}

// Create inserts a fresh session at version 1.
func (r *SessionRepository) Create(ctx context.Context, s *interview.Session) error {
	segments, err := json.Marshal(s.QuestionSegments)
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}
	jd, resume, err := r.sealTexts(s.JobDescription, s.Resume)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO sessions (
	session_id, user_id, persona_id, job_description, resume,
	segments, segments_schema, current_question_index, question_budget,
	end_time, version, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, $11, $12)
`
	_, err = r.db.Exec(ctx, q,
		s.ID, s.UserID, s.PersonaID, jd, resume,
		segments, interview.SegmentsSchemaVersion, s.CurrentQuestionIndex, s.QuestionBudget,
		s.EndTime, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	s.Version = 1
	return nil
}

// Load reads one session, decoding the segments payload and checking
// its schema tag.
func (r *SessionRepository) Load(ctx context.Context, id uuid.UUID) (*interview.Session, error) {
	const q = `
SELECT
	session_id, user_id, persona_id, job_description, resume,
	segments, segments_schema, current_question_index, question_budget,
	end_time, version, created_at, updated_at
FROM sessions WHERE session_id = $1
`
	var (
		s         interview.Session
		segments  []byte
		schemaTag int
	)
	row := r.db.QueryRow(ctx, q, id)
	err := row.Scan(
		&s.ID, &s.UserID, &s.PersonaID, &s.JobDescription, &s.Resume,
		&segments, &schemaTag, &s.CurrentQuestionIndex, &s.QuestionBudget,
		&s.EndTime, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, interview.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	if schemaTag != interview.SegmentsSchemaVersion {
		return nil, fmt.Errorf("session %s has segments schema %d, want %d: %w",
			id, schemaTag, interview.SegmentsSchemaVersion, interview.ErrSegmentsSchema)
	}
	if err := json.Unmarshal(segments, &s.QuestionSegments); err != nil {
		return nil, fmt.Errorf("decode segments for session %s: %w: %w", id, err, interview.ErrSegmentsSchema)
	}
	if s.QuestionSegments == nil {
		s.QuestionSegments = []interview.QuestionSegment{}
	}

	if err := r.openTexts(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the whole mutable state back in one conditional update
// keyed on the version the caller loaded. A version miss means another
// request got there first.
func (r *SessionRepository) Save(ctx context.Context, s *interview.Session) error {
	segments, err := json.Marshal(s.QuestionSegments)
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}

	const q = `
UPDATE sessions SET
	segments = $1,
	segments_schema = $2,
	current_question_index = $3,
	end_time = $4,
	updated_at = $5,
	version = version + 1
WHERE session_id = $6 AND version = $7
`
	tag, err := r.db.Exec(ctx, q,
		segments, interview.SegmentsSchemaVersion, s.CurrentQuestionIndex,
		s.EndTime, s.UpdatedAt, s.ID, s.Version,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sessions WHERE session_id = $1)`, s.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check session exists: %w", err)
		}
		if !exists {
			return fmt.Errorf("session %s: %w", s.ID, interview.ErrSessionNotFound)
		}
		return fmt.Errorf("session %s at version %d: %w", s.ID, s.Version, interview.ErrVersionConflict)
	}
	s.Version++
	return nil
}

func (r *SessionRepository) sealTexts(jd, resume string) (string, string, error) {
	if r.crypto == nil {
		return jd, resume, nil
	}
	sealedJD, err := r.crypto.Encrypt(jd)
	if err != nil {
		return "", "", fmt.Errorf("encrypt job description: %w", err)
	}
	sealedResume := ""
	if resume != "" {
		sealedResume, err = r.crypto.Encrypt(resume)
		if err != nil {
			return "", "", fmt.Errorf("encrypt resume: %w", err)
		}
	}
	return sealedJD, sealedResume, nil
}

func (r *SessionRepository) openTexts(s *interview.Session) error {
	if r.crypto == nil {
		return nil
	}
	jd, err := r.crypto.Decrypt(s.JobDescription)
	if err != nil {
		return fmt.Errorf("decrypt job description: %w", err)
	}
	s.JobDescription = jd
	if s.Resume != "" {
		resume, err := r.crypto.Decrypt(s.Resume)
		if err != nil {
			return fmt.Errorf("decrypt resume: %w", err)
		}
		s.Resume = resume
	}
	return nil
}
