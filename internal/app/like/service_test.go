package like

import (
	"context"
	"testing"

	"backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRepository struct {
	boardExists  func(ctx context.Context, boardID uint64) (bool, error)
	exists       func(ctx context.Context, boardID, userID uint64) (bool, error)
	create       func(ctx context.Context, l *Like) error
	remove       func(ctx context.Context, boardID, userID uint64) error
	countByBoard func(ctx context.Context, boardID uint64) (int64, error)
}

func (m *mockRepository) BoardExists(ctx context.Context, boardID uint64) (bool, error) {
	return m.boardExists(ctx, boardID)
}
func (m *mockRepository) Exists(ctx context.Context, boardID, userID uint64) (bool, error) {
	return m.exists(ctx, boardID, userID)
}
func (m *mockRepository) Create(ctx context.Context, l *Like) error { return m.create(ctx, l) }
func (m *mockRepository) Delete(ctx context.Context, boardID, userID uint64) error {
	return m.remove(ctx, boardID, userID)
}
func (m *mockRepository) CountByBoard(ctx context.Context, boardID uint64) (int64, error) {
	return m.countByBoard(ctx, boardID)
}

var _ Repository = (*mockRepository)(nil)

func TestToggle_AddsLike(t *testing.T) {
	created := false
	repo := &mockRepository{
		boardExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		exists:      func(_ context.Context, _, _ uint64) (bool, error) { return false, nil },
		create: func(_ context.Context, l *Like) error {
			created = true
			assert.Equal(t, uint64(3), l.BoardID)
			assert.Equal(t, uint64(42), l.UserID)
			return nil
		},
		countByBoard: func(_ context.Context, _ uint64) (int64, error) { return 5, nil },
	}
	svc := NewService(repo, zap.NewNop())

	resp, err := svc.Toggle(context.Background(), 42, 3)

	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, resp.Liked)
	assert.Equal(t, int64(5), resp.LikeCount)
}

func TestToggle_RemovesExistingLike(t *testing.T) {
	removed := false
	repo := &mockRepository{
		boardExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		exists:      func(_ context.Context, _, _ uint64) (bool, error) { return true, nil },
		remove: func(_ context.Context, _, _ uint64) error {
			removed = true
			return nil
		},
		countByBoard: func(_ context.Context, _ uint64) (int64, error) { return 4, nil },
	}
	svc := NewService(repo, zap.NewNop())

	resp, err := svc.Toggle(context.Background(), 42, 3)

	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, resp.Liked)
	assert.Equal(t, int64(4), resp.LikeCount)
}

func TestToggle_BoardMissing(t *testing.T) {
	repo := &mockRepository{
		boardExists: func(_ context.Context, _ uint64) (bool, error) { return false, nil },
	}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Toggle(context.Background(), 42, 99)

	assert.True(t, apperror.IsNotFound(err))
}
