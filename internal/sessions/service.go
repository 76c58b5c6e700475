package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iammorganparry/brainstorm/internal/models"
)

// Repository is the persistence surface the session service needs.
// SessionStore and MemoryStore both satisfy it.
type Repository interface {
	GetByID(ctx context.Context, id int) (*models.Session, error)
	List(ctx context.Context) ([]*models.Session, error)
	Add(ctx context.Context, s *models.Session) error
	Update(ctx context.Context, s *models.Session) error
}

// Service handles session listing and creation.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, logger: logger, now: now}
}

// List returns every session, newest first.
func (s *Service) List(ctx context.Context) ([]*models.Session, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, models.StorageError("list sessions", err)
	}
	if list == nil {
		list = []*models.Session{}
	}
	return list, nil
}

// Get returns a single session with its ideas.
func (s *Service) Get(ctx context.Context, id int) (*models.Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, models.StorageError("get session", err)
	}
	if sess == nil {
		return nil, models.NotFoundError(fmt.Sprintf("session %d not found", id))
	}
	return sess, nil
}

// Create starts a new, empty session.
func (s *Service) Create(ctx context.Context, req *models.NewSessionRequest) (*models.Session, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, models.ValidationError("invalid session", "name is required")
	}

	sess := &models.Session{
		Name:        req.Name,
		DateCreated: s.now().UTC().Truncate(time.Second),
		Ideas:       []models.Idea{},
	}
	if err := s.repo.Add(ctx, sess); err != nil {
		return nil, models.StorageError("add session", err)
	}

	s.logger.Info("session created", "id", sess.ID, "name", sess.Name)
	return sess, nil
}
