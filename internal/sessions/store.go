package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iammorganparry/brainstorm/internal/models"
	"github.com/iammorganparry/brainstorm/internal/store"
)

// ErrSessionNotFound is returned by Update when no session with the given ID exists.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore handles brainstorm session persistence on SQLite.
type SessionStore struct {
	db *store.DB
}

// NewSessionStore creates a new session store.
func NewSessionStore(db *store.DB) *SessionStore {
	return &SessionStore{db: db}
}

// GetByID fetches a session and its ideas. Returns nil, nil when absent.
func (s *SessionStore) GetByID(ctx context.Context, id int) (*models.Session, error) {
	var sess models.Session
	var created int64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, date_created FROM brainstorm_sessions WHERE id = ?
	`, id).Scan(&sess.ID, &sess.Name, &created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	sess.DateCreated = time.Unix(created, 0).UTC()

	ideas, err := s.ideasFor(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Ideas = ideas
	return &sess, nil
}

// List returns all sessions, newest first.
func (s *SessionStore) List(ctx context.Context) ([]*models.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, date_created FROM brainstorm_sessions
		ORDER BY date_created DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var sessions []*models.Session
	for rows.Next() {
		var sess models.Session
		var created int64
		if err := rows.Scan(&sess.ID, &sess.Name, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.DateCreated = time.Unix(created, 0).UTC()
		sessions = append(sessions, &sess)
	}
	// Close before querying ideas: MaxOpenConns(1) would otherwise deadlock.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	for _, sess := range sessions {
		ideas, err := s.ideasFor(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		sess.Ideas = ideas
	}
	return sessions, nil
}

// Add inserts a new session with its ideas. A zero ID is assigned by the database.
func (s *SessionStore) Add(ctx context.Context, sess *models.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var res sql.Result
	if sess.ID == 0 {
		res, err = tx.ExecContext(ctx, `
			INSERT INTO brainstorm_sessions (name, date_created) VALUES (?, ?)
		`, sess.Name, sess.DateCreated.Unix())
	} else {
		res, err = tx.ExecContext(ctx, `
			INSERT INTO brainstorm_sessions (id, name, date_created) VALUES (?, ?, ?)
		`, sess.ID, sess.Name, sess.DateCreated.Unix())
	}
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	if sess.ID == 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		sess.ID = int(id)
	}

	if err := insertIdeas(ctx, tx, sess.ID, sess.Ideas); err != nil {
		return err
	}
	return tx.Commit()
}

// Update replaces the stored name and idea sequence of an existing session.
func (s *SessionStore) Update(ctx context.Context, sess *models.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE brainstorm_sessions SET name = ? WHERE id = ?
	`, sess.Name, sess.ID)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update session %d: %w", sess.ID, ErrSessionNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ideas WHERE session_id = ?`, sess.ID); err != nil {
		return fmt.Errorf("clear ideas: %w", err)
	}
	if err := insertIdeas(ctx, tx, sess.ID, sess.Ideas); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SessionStore) ideasFor(ctx context.Context, sessionID int) ([]models.Idea, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description FROM ideas
		WHERE session_id = ?
		ORDER BY position ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	ideas := []models.Idea{}
	for rows.Next() {
		var idea models.Idea
		if err := rows.Scan(&idea.Name, &idea.Description); err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

func insertIdeas(ctx context.Context, tx *sql.Tx, sessionID int, ideas []models.Idea) error {
	for i, idea := range ideas {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ideas (session_id, position, name, description) VALUES (?, ?, ?, ?)
		`, sessionID, i, idea.Name, idea.Description)
		if err != nil {
			return fmt.Errorf("insert idea: %w", err)
		}
	}
	return nil
}
