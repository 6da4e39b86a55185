package recorder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/playmatatu/billiards/internal/game"
)

// Session is one run of the table server.
type Session struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	TableParams json.RawMessage `db:"table_params" json:"table_params"`
	TickRate    int             `db:"tick_rate" json:"tick_rate"`
	Frames      int64           `db:"frames" json:"frames"`
	StartedAt   time.Time       `db:"started_at" json:"started_at"`
	EndedAt     *time.Time      `db:"ended_at" json:"ended_at,omitempty"`
}

// EventRow is a stored control event.
type EventRow struct {
	ID             int64     `db:"id" json:"id"`
	SessionID      uuid.UUID `db:"session_id" json:"session_id"`
	Kind           string    `db:"kind" json:"kind"`
	Frame          int64     `db:"frame" json:"frame"`
	PhysicsElapsed float64   `db:"physics_elapsed" json:"physics_elapsed"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Store persists sessions and their control events.
type Store interface {
	CreateSession(ctx context.Context, s Session) error
	InsertEvent(ctx context.Context, sessionID uuid.UUID, ev game.ControlEvent) error
	EndSession(ctx context.Context, sessionID uuid.UUID, frames uint64) error
	Events(ctx context.Context, sessionID uuid.UUID) ([]EventRow, error)
}

// PostgresStore is the sqlx-backed Store.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sim_sessions (id, table_params, tick_rate, started_at) VALUES ($1, $2::jsonb, $3, $4)`,
		sess.ID, string(sess.TableParams), sess.TickRate, sess.StartedAt,
	)
	return err
}

func (s *PostgresStore) InsertEvent(ctx context.Context, sessionID uuid.UUID, ev game.ControlEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO control_events (session_id, kind, frame, physics_elapsed, created_at) VALUES ($1, $2, $3, $4, NOW())`,
		sessionID, string(ev.Kind), int64(ev.Frame), ev.Elapsed.Seconds(),
	)
	return err
}

func (s *PostgresStore) EndSession(ctx context.Context, sessionID uuid.UUID, frames uint64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sim_sessions SET frames = $2, ended_at = NOW() WHERE id = $1`,
		sessionID, int64(frames),
	)
	return err
}

func (s *PostgresStore) Events(ctx context.Context, sessionID uuid.UUID) ([]EventRow, error) {
	var rows []EventRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, session_id, kind, frame, physics_elapsed, created_at FROM control_events WHERE session_id = $1 ORDER BY frame, id`,
		sessionID,
	)
	return rows, err
}
