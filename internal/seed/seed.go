package seed

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iammorganparry/brainstorm/internal/models"
)

// Repository is what Apply needs to insert fixture sessions.
type Repository interface {
	GetByID(ctx context.Context, id int) (*models.Session, error)
	Add(ctx context.Context, s *models.Session) error
}

// TestSession builds the session the development environment starts with.
func TestSession() *models.Session {
	s := &models.Session{
		ID:          1,
		Name:        "Test One",
		DateCreated: time.Date(2016, 7, 2, 0, 0, 0, 0, time.UTC),
		Ideas:       []models.Idea{},
	}
	s.AddIdea(models.Idea{Name: "One"})
	return s
}

type fixtureFile struct {
	Sessions []fixtureSession `yaml:"sessions"`
}

type fixtureSession struct {
	ID          int           `yaml:"id"`
	Name        string        `yaml:"name"`
	DateCreated time.Time     `yaml:"dateCreated"`
	Ideas       []fixtureIdea `yaml:"ideas"`
}

type fixtureIdea struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadFile reads a YAML fixture of sessions from disk.
func LoadFile(path string) ([]*models.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML fixture. Sessions without a date get the zero time
// replaced by now; ideas must be named. Dates are truncated to whole seconds,
// the resolution the SQLite store keeps.
func Parse(data []byte) ([]*models.Session, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	out := make([]*models.Session, 0, len(f.Sessions))
	for i, fs := range f.Sessions {
		if strings.TrimSpace(fs.Name) == "" {
			return nil, fmt.Errorf("session %d: name is required", i)
		}
		created := fs.DateCreated
		if created.IsZero() {
			created = time.Now()
		}
		sess := &models.Session{
			ID:          fs.ID,
			Name:        fs.Name,
			DateCreated: created.UTC().Truncate(time.Second),
			Ideas:       []models.Idea{},
		}
		for j, fi := range fs.Ideas {
			if strings.TrimSpace(fi.Name) == "" {
				return nil, fmt.Errorf("session %q idea %d: name is required", fs.Name, j)
			}
			sess.AddIdea(models.Idea{Name: fi.Name, Description: fi.Description})
		}
		out = append(out, sess)
	}
	return out, nil
}

// Apply adds each session whose ID is not already stored. Sessions with a
// zero ID are always added. Returns the number added.
func Apply(ctx context.Context, repo Repository, sessions []*models.Session) (int, error) {
	added := 0
	for _, s := range sessions {
		if s.ID != 0 {
			existing, err := repo.GetByID(ctx, s.ID)
			if err != nil {
				return added, fmt.Errorf("check session %d: %w", s.ID, err)
			}
			if existing != nil {
				continue
			}
		}
		if err := repo.Add(ctx, s); err != nil {
			return added, fmt.Errorf("add session %q: %w", s.Name, err)
		}
		added++
	}
	return added, nil
}
