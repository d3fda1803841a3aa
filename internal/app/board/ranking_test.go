package board

import (
	"testing"

	"backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortSpec_Defaults(t *testing.T) {
	spec, err := ParseSortSpec("", "")

	require.NoError(t, err)
	assert.Equal(t, SortSpec{By: SortByCreatedAt, Order: OrderDesc}, spec)
	assert.False(t, spec.Derived())
}

func TestParseSortSpec_UnknownKey(t *testing.T) {
	_, err := ParseSortSpec("views", "")

	status, ok := apperror.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 400, status)
}

func TestParseSortSpec_UnknownOrder(t *testing.T) {
	_, err := ParseSortSpec(SortByTitle, "sideways")

	status, ok := apperror.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 400, status)
}

func TestSortSpec_Column(t *testing.T) {
	assert.Equal(t, "boards.created_at DESC", SortSpec{By: SortByCreatedAt, Order: OrderDesc}.Column())
	assert.Equal(t, "boards.title ASC", SortSpec{By: SortByTitle, Order: OrderAsc}.Column())
}

func TestSortSpec_LikesIsDerived(t *testing.T) {
	assert.True(t, SortSpec{By: SortByLikes, Order: OrderDesc}.Derived())
}

func TestSortByLikeCount_Desc(t *testing.T) {
	items := []Summary{
		{ID: 1, LikeCount: 2},
		{ID: 2, LikeCount: 9},
		{ID: 3, LikeCount: 5},
	}

	SortByLikeCount(items, OrderDesc)

	assert.Equal(t, uint64(2), items[0].ID)
	assert.Equal(t, uint64(3), items[1].ID)
	assert.Equal(t, uint64(1), items[2].ID)
}

func TestSortByLikeCount_Asc(t *testing.T) {
	items := []Summary{
		{ID: 1, LikeCount: 2},
		{ID: 2, LikeCount: 9},
		{ID: 3, LikeCount: 5},
	}

	SortByLikeCount(items, OrderAsc)

	assert.Equal(t, uint64(1), items[0].ID)
	assert.Equal(t, uint64(3), items[1].ID)
	assert.Equal(t, uint64(2), items[2].ID)
}

func TestSortByLikeCount_TiesKeepFetchOrder(t *testing.T) {
	items := []Summary{
		{ID: 10, LikeCount: 3},
		{ID: 11, LikeCount: 3},
		{ID: 12, LikeCount: 3},
	}

	SortByLikeCount(items, OrderDesc)

	assert.Equal(t, []uint64{10, 11, 12}, []uint64{items[0].ID, items[1].ID, items[2].ID})
}
