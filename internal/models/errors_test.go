package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("locked")
	wrapped := fmt.Errorf("create idea: %w", StorageError("update session", cause))

	assert.Equal(t, KindStorage, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, KindValidation, KindOf(ValidationError("bad", "name is required")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundError("session 1 not found")))
	assert.Equal(t, Kind(""), KindOf(cause))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "not_found: session 5 not found", NotFoundError("session 5 not found").Error())
	assert.Equal(t, "storage: get session: locked", StorageError("get session", errors.New("locked")).Error())
}

func TestSessionCloneDoesNotAlias(t *testing.T) {
	s := &Session{ID: 1, Ideas: []Idea{{Name: "One"}}}
	c := s.Clone()
	c.AddIdea(Idea{Name: "Two"})
	c.Ideas[0].Name = "changed"

	assert.Len(t, s.Ideas, 1)
	assert.Equal(t, "One", s.Ideas[0].Name)
}
