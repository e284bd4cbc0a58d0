package repository

import (
	"context"
	"errors"
	"fmt"

	"srent/internal/data/entity"
	"srent/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValid(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, token uuid.UUID) error
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO sessions (token, user_id, role, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		session.Token, session.UserID, session.Role, session.ExpiresAt, session.CreatedAt,
	); err != nil {
		r.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", session.UserID))
		return wrapDBError("create session", err)
	}
	return nil
}

func (r *sessionRepository) FindValid(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	err := r.db.QueryRow(ctx, `
		SELECT token, user_id, role, expires_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW()`, token,
	).Scan(&session.Token, &session.UserID, &session.Role, &session.ExpiresAt, &session.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		r.log.Error("Failed to delete session", zap.Error(err))
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
