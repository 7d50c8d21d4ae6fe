package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage("u1", "go/basics", "Go Basics", 3, true)

	assert.Equal(t, int64(0), p.ID())
	assert.Equal(t, "u1", p.OwnerID())
	assert.Equal(t, "go/basics", p.Slug())
	assert.Equal(t, "Go Basics", p.Title())
	assert.Equal(t, 3, p.Priority())
	assert.True(t, p.Public())
	assert.False(t, p.LastUpdated().IsZero())
}

func TestReconstructPage(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := ReconstructPage(42, "u1", "a", "A", -1, false, ts)

	assert.Equal(t, int64(42), p.ID())
	assert.Equal(t, -1, p.Priority())
	assert.False(t, p.Public())
	assert.Equal(t, ts, p.LastUpdated())
}

func TestPage_VisibleTo(t *testing.T) {
	private := NewPage("u1", "a", "A", 0, false)
	public := NewPage("u1", "b", "B", 0, true)

	assert.True(t, private.VisibleTo("u1"))
	assert.False(t, private.VisibleTo("u2"))
	assert.False(t, private.VisibleTo(""))
	assert.True(t, public.VisibleTo("u2"))
	assert.True(t, public.VisibleTo(""))
}

func TestPage_WithersDoNotMutate(t *testing.T) {
	p := NewPage("u1", "a", "A", 0, false)
	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	q := p.WithID(9).WithLastUpdated(ts)

	assert.Equal(t, int64(0), p.ID())
	assert.Equal(t, int64(9), q.ID())
	assert.Equal(t, ts, q.LastUpdated())
}

func TestOwner_NameFallsBackToID(t *testing.T) {
	assert.Equal(t, "alice", NewOwner("u1", "alice").Name())
	assert.Equal(t, "u1", NewOwner("u1", "").Name())
}
