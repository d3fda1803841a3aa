package comment

import (
	"context"
	"testing"

	"backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockRepository struct {
	boardExists func(ctx context.Context, boardID uint64) (bool, error)
	create      func(ctx context.Context, cm *Comment) error
	findByID    func(ctx context.Context, id uint64) (*Comment, error)
	listByBoard func(ctx context.Context, boardID uint64) ([]*Comment, error)
	remove      func(ctx context.Context, id uint64) error
}

func (m *mockRepository) BoardExists(ctx context.Context, boardID uint64) (bool, error) {
	return m.boardExists(ctx, boardID)
}
func (m *mockRepository) Create(ctx context.Context, cm *Comment) error { return m.create(ctx, cm) }
func (m *mockRepository) FindByID(ctx context.Context, id uint64) (*Comment, error) {
	return m.findByID(ctx, id)
}
func (m *mockRepository) ListByBoard(ctx context.Context, boardID uint64) ([]*Comment, error) {
	return m.listByBoard(ctx, boardID)
}
func (m *mockRepository) Delete(ctx context.Context, id uint64) error { return m.remove(ctx, id) }

var _ Repository = (*mockRepository)(nil)

func TestCreateComment_BoardMissing(t *testing.T) {
	repo := &mockRepository{
		boardExists: func(_ context.Context, _ uint64) (bool, error) { return false, nil },
	}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.CreateComment(context.Background(), 42, 99, &CreateCommentRequest{Content: "hi"})

	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateComment_SetsAuthorAndBoard(t *testing.T) {
	var saved *Comment
	repo := &mockRepository{
		boardExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		create: func(_ context.Context, cm *Comment) error {
			cm.ID = 7
			saved = cm
			return nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	cm, err := svc.CreateComment(context.Background(), 42, 3, &CreateCommentRequest{Content: "great route"})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint64(7), cm.ID)
	assert.Equal(t, uint64(42), saved.UserID)
	assert.Equal(t, uint64(3), saved.BoardID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestDeleteComment_NotOwner(t *testing.T) {
	removed := false
	repo := &mockRepository{
		findByID: func(_ context.Context, id uint64) (*Comment, error) {
			return &Comment{ID: id, UserID: 7}, nil
		},
		remove: func(_ context.Context, _ uint64) error {
			removed = true
			return nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	err := svc.DeleteComment(context.Background(), 42, 5)

	status, ok := apperror.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 401, status)
	assert.False(t, removed)
}

func TestDeleteComment_Missing(t *testing.T) {
	repo := &mockRepository{
		findByID: func(_ context.Context, _ uint64) (*Comment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, zap.NewNop())

	err := svc.DeleteComment(context.Background(), 42, 5)

	assert.True(t, apperror.IsNotFound(err))
}
