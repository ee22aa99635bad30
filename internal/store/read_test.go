package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, revisions ...[2]string) {
	t.Helper()
	for _, r := range revisions {
		_, _, err := s.Save(context.Background(), r[0], "select", r[1], "")
		require.NoError(t, err)
	}
}

func TestLatest(t *testing.T) {
	s := createTestStore(t)
	seed(t, s,
		[2]string{"a", "SELECT * WHERE {}"},
		[2]string{"a", "SELECT ?x WHERE {}"},
	)

	rec, err := s.Latest(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "SELECT ?x WHERE {}", rec.Text)
	assert.Equal(t, int64(2), rec.Seq)
}

func TestLatest_NotFound(t *testing.T) {
	s := createTestStore(t)
	_, err := s.Latest(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHistory(t *testing.T) {
	s := createTestStore(t)
	seed(t, s,
		[2]string{"a", "SELECT * WHERE {}"},
		[2]string{"b", "ASK WHERE {}"},
		[2]string{"a", "SELECT ?x WHERE {}"},
	)

	history, err := s.History(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(1), history[0].Seq)
	assert.Equal(t, int64(3), history[1].Seq)
}

func TestHistory_EmptyNotNil(t *testing.T) {
	s := createTestStore(t)
	history, err := s.History(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestList_LatestPerName(t *testing.T) {
	s := createTestStore(t)
	seed(t, s,
		[2]string{"a", "SELECT * WHERE {}"},
		[2]string{"b", "ASK WHERE {}"},
		[2]string{"a", "SELECT ?x WHERE {}"},
	)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Name)
	assert.Equal(t, "a", list[1].Name)
	assert.Equal(t, "SELECT ?x WHERE {}", list[1].Text)
}

func TestByHash_AcrossNames(t *testing.T) {
	s := createTestStore(t)
	seed(t, s,
		[2]string{"a", "ASK WHERE {}"},
		[2]string{"b", "ASK WHERE {}"},
		[2]string{"c", "SELECT * WHERE {}"},
	)

	same, err := s.ByHash(context.Background(), TextHash("ASK WHERE {}"))
	require.NoError(t, err)
	require.Len(t, same, 2)
	assert.Equal(t, "a", same[0].Name)
	assert.Equal(t, "b", same[1].Name)
}
