package models

import "time"

// Session is a named, timestamped collection of ideas.
type Session struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DateCreated time.Time `json:"dateCreated"`
	Ideas       []Idea    `json:"ideas"`
}

// AddIdea appends an idea, keeping insertion order.
func (s *Session) AddIdea(idea Idea) {
	s.Ideas = append(s.Ideas, idea)
}

// Clone returns a deep copy so the idea slice is never shared.
func (s *Session) Clone() *Session {
	c := *s
	c.Ideas = make([]Idea, len(s.Ideas))
	copy(c.Ideas, s.Ideas)
	return &c
}

// Idea is a name/description pair contributed to a session.
type Idea struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IdeaDTO is the read-only projection returned by GET /api/ideas/forsession/{sessionId}.
type IdeaDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewIdeaRequest is the payload for POST /api/ideas.
type NewIdeaRequest struct {
	SessionID   int    `json:"sessionId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewSessionRequest is the payload for POST /api/sessions.
type NewSessionRequest struct {
	Name string `json:"name"`
}

// ListSessionsResponse is returned from GET /api/sessions.
type ListSessionsResponse struct {
	Sessions []*Session `json:"sessions"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// HealthResponse is returned from GET /health.
type HealthResponse struct {
	Status       string       `json:"status"`
	DB           ServiceCheck `json:"db"`
	SessionCount int          `json:"sessionCount"`
}

type ServiceCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
