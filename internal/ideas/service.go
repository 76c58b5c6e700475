package ideas

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iammorganparry/brainstorm/internal/models"
)

// Repository is the lookup/update pair the idea service needs from a session store.
type Repository interface {
	GetByID(ctx context.Context, id int) (*models.Session, error)
	Update(ctx context.Context, s *models.Session) error
}

// Service validates idea submissions and appends them to sessions.
// Appends to one session are serialized so overlapping requests cannot
// overwrite each other's ideas.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, locks: map[int]*sync.Mutex{}}
}

func (s *Service) sessionLock(id int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// CreateIdea appends a new idea to the request's session and returns the
// updated session. The store is not touched if the request is invalid.
func (s *Service) CreateIdea(ctx context.Context, req *models.NewIdeaRequest) (*models.Session, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	lock := s.sessionLock(req.SessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.lookup(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	sess.AddIdea(models.Idea{
		Name:        req.Name,
		Description: req.Description,
	})

	if err := s.repo.Update(ctx, sess); err != nil {
		return nil, models.StorageError("update session", err)
	}

	s.logger.Info("idea created", "session_id", sess.ID, "idea_count", len(sess.Ideas))
	return sess, nil
}

// ListForSession returns the session's ideas in insertion order.
func (s *Service) ListForSession(ctx context.Context, sessionID int) ([]models.IdeaDTO, error) {
	sess, err := s.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]models.IdeaDTO, 0, len(sess.Ideas))
	for _, idea := range sess.Ideas {
		out = append(out, models.IdeaDTO{Name: idea.Name, Description: idea.Description})
	}
	return out, nil
}

func (s *Service) lookup(ctx context.Context, id int) (*models.Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, models.StorageError("get session", err)
	}
	if sess == nil {
		return nil, models.NotFoundError(fmt.Sprintf("session %d not found", id))
	}
	return sess, nil
}
