package board

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"backend/internal/apperror"
	"backend/internal/app/image"
	"backend/internal/app/route"
	"backend/internal/app/trip"
	"backend/internal/app/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mockRepository is a hand-written test double: set only the function fields
// a test needs. Transaction runs the closure against the mock itself unless
// overridden.
type mockRepository struct {
	transaction              func(ctx context.Context, fn func(Repository) error) error
	findByID                 func(ctx context.Context, id uint64) (*Board, error)
	findDetailByID           func(ctx context.Context, id uint64) (*Board, error)
	listAll                  func(ctx context.Context, filter ListFilter, sort SortSpec) ([]*Board, error)
	listLikedByUser          func(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error)
	listParticipatedByUser   func(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error)
	listByUserAndCategory    func(ctx context.Context, userID uint64, category Category) ([]*Board, error)
	listTopByCategory        func(ctx context.Context, category Category, limit int, byLikes bool) ([]*Board, error)
	countLikes               func(ctx context.Context, boardID uint64) (int64, error)
	countByUserAndCategory   func(ctx context.Context, userID uint64, category Category) (int64, error)
	routeExists              func(ctx context.Context, routeID uint64) (bool, error)
	routeWithDays            func(ctx context.Context, routeID uint64) (*route.Route, error)
	tripByBoard              func(ctx context.Context, boardID uint64) (*trip.Trip, error)
	imagesByBoard            func(ctx context.Context, boardID uint64) ([]*image.Image, error)
	create                   func(ctx context.Context, b *Board) error
	update                   func(ctx context.Context, b *Board) error
	createImage              func(ctx context.Context, img *image.Image) error
	upsertTrip               func(ctx context.Context, t *trip.Trip) error
	deleteImagesByBoard      func(ctx context.Context, boardID uint64) error
	deleteParticipantsByTrip func(ctx context.Context, tripID uint64) error
	deleteTripByBoard        func(ctx context.Context, boardID uint64) error
	deleteLikesByBoard       func(ctx context.Context, boardID uint64) error
	deleteCommentsByBoard    func(ctx context.Context, boardID uint64) error
	deleteBoard              func(ctx context.Context, boardID uint64) error
}

func (m *mockRepository) Transaction(ctx context.Context, fn func(Repository) error) error {
	if m.transaction != nil {
		return m.transaction(ctx, fn)
	}
	return fn(m)
}
func (m *mockRepository) FindByID(ctx context.Context, id uint64) (*Board, error) {
	return m.findByID(ctx, id)
}
func (m *mockRepository) FindDetailByID(ctx context.Context, id uint64) (*Board, error) {
	return m.findDetailByID(ctx, id)
}
func (m *mockRepository) ListAll(ctx context.Context, filter ListFilter, sort SortSpec) ([]*Board, error) {
	return m.listAll(ctx, filter, sort)
}
func (m *mockRepository) ListLikedByUser(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error) {
	return m.listLikedByUser(ctx, userID, filter, sort)
}
func (m *mockRepository) ListParticipatedByUser(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) ([]*Board, error) {
	return m.listParticipatedByUser(ctx, userID, filter, sort)
}
func (m *mockRepository) ListByUserAndCategory(ctx context.Context, userID uint64, category Category) ([]*Board, error) {
	return m.listByUserAndCategory(ctx, userID, category)
}
func (m *mockRepository) ListTopByCategory(ctx context.Context, category Category, limit int, byLikes bool) ([]*Board, error) {
	return m.listTopByCategory(ctx, category, limit, byLikes)
}
func (m *mockRepository) CountLikes(ctx context.Context, boardID uint64) (int64, error) {
	return m.countLikes(ctx, boardID)
}
func (m *mockRepository) CountByUserAndCategory(ctx context.Context, userID uint64, category Category) (int64, error) {
	return m.countByUserAndCategory(ctx, userID, category)
}
func (m *mockRepository) RouteExists(ctx context.Context, routeID uint64) (bool, error) {
	return m.routeExists(ctx, routeID)
}
func (m *mockRepository) RouteWithDays(ctx context.Context, routeID uint64) (*route.Route, error) {
	return m.routeWithDays(ctx, routeID)
}
func (m *mockRepository) TripByBoard(ctx context.Context, boardID uint64) (*trip.Trip, error) {
	return m.tripByBoard(ctx, boardID)
}
func (m *mockRepository) ImagesByBoard(ctx context.Context, boardID uint64) ([]*image.Image, error) {
	return m.imagesByBoard(ctx, boardID)
}
func (m *mockRepository) Create(ctx context.Context, b *Board) error { return m.create(ctx, b) }
func (m *mockRepository) Update(ctx context.Context, b *Board) error { return m.update(ctx, b) }
func (m *mockRepository) CreateImage(ctx context.Context, img *image.Image) error {
	return m.createImage(ctx, img)
}
func (m *mockRepository) UpsertTrip(ctx context.Context, t *trip.Trip) error {
	return m.upsertTrip(ctx, t)
}
func (m *mockRepository) DeleteImagesByBoard(ctx context.Context, boardID uint64) error {
	return m.deleteImagesByBoard(ctx, boardID)
}
func (m *mockRepository) DeleteParticipantsByTrip(ctx context.Context, tripID uint64) error {
	return m.deleteParticipantsByTrip(ctx, tripID)
}
func (m *mockRepository) DeleteTripByBoard(ctx context.Context, boardID uint64) error {
	return m.deleteTripByBoard(ctx, boardID)
}
func (m *mockRepository) DeleteLikesByBoard(ctx context.Context, boardID uint64) error {
	return m.deleteLikesByBoard(ctx, boardID)
}
func (m *mockRepository) DeleteCommentsByBoard(ctx context.Context, boardID uint64) error {
	return m.deleteCommentsByBoard(ctx, boardID)
}
func (m *mockRepository) Delete(ctx context.Context, boardID uint64) error {
	return m.deleteBoard(ctx, boardID)
}

var _ Repository = (*mockRepository)(nil)

type mockUserRepository struct {
	findByID   func(ctx context.Context, id uint64) (*user.User, error)
	updateRole func(ctx context.Context, id uint64, role user.Role) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint64) (*user.User, error) {
	return m.findByID(ctx, id)
}
func (m *mockUserRepository) UpdateRole(ctx context.Context, id uint64, role user.Role) error {
	return m.updateRole(ctx, id, role)
}

var _ user.Repository = (*mockUserRepository)(nil)

type mockStore struct {
	upload func(ctx context.Context, file *multipart.FileHeader) (string, error)
	remove func(ctx context.Context, url string) error
}

func (m *mockStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return m.upload(ctx, file)
}
func (m *mockStore) Delete(ctx context.Context, url string) error {
	return m.remove(ctx, url)
}

var _ ObjectStore = (*mockStore)(nil)

func newTestService(repo *mockRepository, users *mockUserRepository, store *mockStore) Service {
	return NewService(repo, users, store, 10, zap.NewNop())
}

func companionRequest() CreateBoardRequest {
	return CreateBoardRequest{
		RouteID:      3,
		Title:        "Weekend hiking crew",
		Summary:      "Two days on the ridge",
		Content:      "Looking for three more hikers.",
		Category:     string(CategoryCompanion),
		AgeMin:       20,
		AgeMax:       45,
		TargetNumber: 4,
		Gender:       string(trip.GenderAny),
	}
}

func TestCreateBoard_CompanionCreatesTrip(t *testing.T) {
	var createdTrip *trip.Trip
	repo := &mockRepository{
		routeExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		create: func(_ context.Context, b *Board) error {
			b.ID = 11
			return nil
		},
		upsertTrip: func(_ context.Context, tr *trip.Trip) error {
			createdTrip = tr
			return nil
		},
		countByUserAndCategory: func(_ context.Context, _ uint64, _ Category) (int64, error) {
			return 1, nil
		},
	}
	users := &mockUserRepository{
		findByID: func(_ context.Context, id uint64) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleUser, CreatedAt: time.Now()}, nil
		},
	}
	svc := newTestService(repo, users, &mockStore{})

	id, err := svc.CreateBoard(context.Background(), 42, companionRequest(), nil)

	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)
	require.NotNil(t, createdTrip)
	assert.Equal(t, uint64(11), createdTrip.BoardID)
	assert.Equal(t, 4, createdTrip.TargetNumber)
	assert.Equal(t, trip.GenderAny, createdTrip.Gender)
}

func TestCreateBoard_ReviewSkipsTrip(t *testing.T) {
	tripTouched := false
	repo := &mockRepository{
		routeExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		create: func(_ context.Context, b *Board) error {
			b.ID = 12
			return nil
		},
		upsertTrip: func(_ context.Context, _ *trip.Trip) error {
			tripTouched = true
			return nil
		},
		countByUserAndCategory: func(_ context.Context, _ uint64, _ Category) (int64, error) {
			return 1, nil
		},
	}
	users := &mockUserRepository{
		findByID: func(_ context.Context, id uint64) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleUser, CreatedAt: time.Now()}, nil
		},
	}
	svc := newTestService(repo, users, &mockStore{})

	req := companionRequest()
	req.Category = string(CategoryReview)

	_, err := svc.CreateBoard(context.Background(), 42, req, nil)

	require.NoError(t, err)
	assert.False(t, tripTouched)
}

func TestCreateBoard_PromotesAuthor(t *testing.T) {
	var promotedTo user.Role
	repo := &mockRepository{
		routeExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		create: func(_ context.Context, b *Board) error {
			b.ID = 13
			return nil
		},
		upsertTrip: func(_ context.Context, _ *trip.Trip) error { return nil },
		countByUserAndCategory: func(_ context.Context, _ uint64, category Category) (int64, error) {
			assert.Equal(t, CategoryCompanion, category)
			return user.PromotionBoardThreshold, nil
		},
	}
	users := &mockUserRepository{
		findByID: func(_ context.Context, id uint64) (*user.User, error) {
			return &user.User{
				ID:        id,
				Role:      user.RoleUser,
				CreatedAt: time.Now().AddDate(0, -7, 0),
			}, nil
		},
		updateRole: func(_ context.Context, id uint64, role user.Role) error {
			assert.Equal(t, uint64(42), id)
			promotedTo = role
			return nil
		},
	}
	svc := newTestService(repo, users, &mockStore{})

	_, err := svc.CreateBoard(context.Background(), 42, companionRequest(), nil)

	require.NoError(t, err)
	assert.Equal(t, user.RoleAll, promotedTo)
}

func TestCreateBoard_AnyCategoryCanPromote(t *testing.T) {
	// The companion-board threshold counts history, not the board being
	// created: a REVIEW post by an author who already qualifies promotes too.
	var promotedTo user.Role
	repo := &mockRepository{
		routeExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		create: func(_ context.Context, b *Board) error {
			b.ID = 21
			return nil
		},
		countByUserAndCategory: func(_ context.Context, _ uint64, category Category) (int64, error) {
			assert.Equal(t, CategoryCompanion, category)
			return user.PromotionBoardThreshold, nil
		},
	}
	users := &mockUserRepository{
		findByID: func(_ context.Context, id uint64) (*user.User, error) {
			return &user.User{
				ID:        id,
				Role:      user.RoleUser,
				CreatedAt: time.Now().AddDate(0, -7, 0),
			}, nil
		},
		updateRole: func(_ context.Context, id uint64, role user.Role) error {
			assert.Equal(t, uint64(42), id)
			promotedTo = role
			return nil
		},
	}
	svc := newTestService(repo, users, &mockStore{})

	req := companionRequest()
	req.Category = string(CategoryReview)

	_, err := svc.CreateBoard(context.Background(), 42, req, nil)

	require.NoError(t, err)
	assert.Equal(t, user.RoleAll, promotedTo)
}

func TestCreateBoard_YoungAccountNotPromoted(t *testing.T) {
	roleUpdated := false
	repo := &mockRepository{
		routeExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		create: func(_ context.Context, b *Board) error {
			b.ID = 14
			return nil
		},
		upsertTrip: func(_ context.Context, _ *trip.Trip) error { return nil },
		countByUserAndCategory: func(_ context.Context, _ uint64, _ Category) (int64, error) {
			return user.PromotionBoardThreshold + 5, nil
		},
	}
	users := &mockUserRepository{
		findByID: func(_ context.Context, id uint64) (*user.User, error) {
			return &user.User{
				ID:        id,
				Role:      user.RoleUser,
				CreatedAt: time.Now().AddDate(0, -3, 0),
			}, nil
		},
		updateRole: func(_ context.Context, _ uint64, _ user.Role) error {
			roleUpdated = true
			return nil
		},
	}
	svc := newTestService(repo, users, &mockStore{})

	_, err := svc.CreateBoard(context.Background(), 42, companionRequest(), nil)

	require.NoError(t, err)
	assert.False(t, roleUpdated)
}

func TestCreateBoard_RouteMissing(t *testing.T) {
	repo := &mockRepository{
		routeExists: func(_ context.Context, _ uint64) (bool, error) { return false, nil },
	}
	users := &mockUserRepository{
		findByID: func(_ context.Context, id uint64) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleUser}, nil
		},
	}
	svc := newTestService(repo, users, &mockStore{})

	_, err := svc.CreateBoard(context.Background(), 42, companionRequest(), nil)

	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateBoard_BadGender(t *testing.T) {
	svc := newTestService(&mockRepository{}, &mockUserRepository{}, &mockStore{})

	req := companionRequest()
	req.Gender = "EVERYONE"

	_, err := svc.CreateBoard(context.Background(), 42, req, nil)

	status, ok := apperror.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 400, status)
}

func TestUpdateBoard_NotOwner(t *testing.T) {
	updated := false
	repo := &mockRepository{
		findByID: func(_ context.Context, id uint64) (*Board, error) {
			return &Board{ID: id, AuthorID: 7, Category: CategoryReview}, nil
		},
		update: func(_ context.Context, _ *Board) error {
			updated = true
			return nil
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	req := companionRequest()
	req.Category = string(CategoryReview)

	err := svc.UpdateBoard(context.Background(), 42, 5, req, nil)

	status, ok := apperror.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 401, status)
	assert.False(t, updated)
}

func TestUpdateBoard_ResetsCreatedAt(t *testing.T) {
	stale := time.Now().AddDate(0, -2, 0)
	var saved *Board
	repo := &mockRepository{
		findByID: func(_ context.Context, id uint64) (*Board, error) {
			return &Board{ID: id, AuthorID: 42, Category: CategoryReview, CreatedAt: stale}, nil
		},
		routeExists: func(_ context.Context, _ uint64) (bool, error) { return true, nil },
		update: func(_ context.Context, b *Board) error {
			saved = b
			return nil
		},
		tripByBoard: func(_ context.Context, _ uint64) (*trip.Trip, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	req := companionRequest()
	req.Category = string(CategoryReview)
	req.Title = "Rewritten title"

	before := time.Now()
	err := svc.UpdateBoard(context.Background(), 42, 5, req, nil)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Rewritten title", saved.Title)
	assert.False(t, saved.CreatedAt.Before(before))
}

func TestDeleteBoard_CascadeOrder(t *testing.T) {
	var ops []string
	var droppedObjects []string
	repo := &mockRepository{
		findByID: func(_ context.Context, id uint64) (*Board, error) {
			return &Board{ID: id, AuthorID: 42, Category: CategoryCompanion}, nil
		},
		tripByBoard: func(_ context.Context, _ uint64) (*trip.Trip, error) {
			return &trip.Trip{ID: 9, BoardID: 5}, nil
		},
		imagesByBoard: func(_ context.Context, _ uint64) ([]*image.Image, error) {
			return []*image.Image{{ID: 1, URL: "http://img/a.jpg"}}, nil
		},
		deleteImagesByBoard: func(_ context.Context, _ uint64) error {
			ops = append(ops, "images")
			return nil
		},
		deleteParticipantsByTrip: func(_ context.Context, tripID uint64) error {
			assert.Equal(t, uint64(9), tripID)
			ops = append(ops, "participants")
			return nil
		},
		deleteTripByBoard: func(_ context.Context, _ uint64) error {
			ops = append(ops, "trip")
			return nil
		},
		deleteLikesByBoard: func(_ context.Context, _ uint64) error {
			ops = append(ops, "likes")
			return nil
		},
		deleteCommentsByBoard: func(_ context.Context, _ uint64) error {
			ops = append(ops, "comments")
			return nil
		},
		deleteBoard: func(_ context.Context, _ uint64) error {
			ops = append(ops, "board")
			return nil
		},
	}
	store := &mockStore{
		remove: func(_ context.Context, url string) error {
			droppedObjects = append(droppedObjects, url)
			return nil
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, store)

	err := svc.DeleteBoard(context.Background(), 42, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"images", "participants", "trip", "likes", "comments", "board"}, ops)
	assert.Equal(t, []string{"http://img/a.jpg"}, droppedObjects)
}

func TestDeleteBoard_TripMissing(t *testing.T) {
	repo := &mockRepository{
		findByID: func(_ context.Context, id uint64) (*Board, error) {
			return &Board{ID: id, AuthorID: 42, Category: CategoryGuide}, nil
		},
		tripByBoard: func(_ context.Context, _ uint64) (*trip.Trip, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	err := svc.DeleteBoard(context.Background(), 42, 5)

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteBoard_NotOwner(t *testing.T) {
	repo := &mockRepository{
		findByID: func(_ context.Context, id uint64) (*Board, error) {
			return &Board{ID: id, AuthorID: 7, Category: CategoryReview}, nil
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	err := svc.DeleteBoard(context.Background(), 42, 5)

	status, ok := apperror.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 401, status)
}

func TestGetParticipatedBoards_ReviewRejected(t *testing.T) {
	svc := newTestService(&mockRepository{}, &mockUserRepository{}, &mockStore{})

	review := CategoryReview
	_, err := svc.GetParticipatedBoards(context.Background(), 42,
		ListFilter{Category: &review}, SortSpec{By: SortByCreatedAt, Order: OrderDesc})

	status, ok := apperror.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, 400, status)
}

func TestGetParticipatedBoards_EmptyIsNotFound(t *testing.T) {
	repo := &mockRepository{
		listParticipatedByUser: func(_ context.Context, _ uint64, _ ListFilter, _ SortSpec) ([]*Board, error) {
			return nil, nil
		},
	}
	users := &mockUserRepository{
		findByID: func(_ context.Context, id uint64) (*user.User, error) {
			return &user.User{ID: id}, nil
		},
	}
	svc := newTestService(repo, users, &mockStore{})

	_, err := svc.GetParticipatedBoards(context.Background(), 42,
		ListFilter{}, SortSpec{By: SortByCreatedAt, Order: OrderDesc})

	assert.True(t, apperror.IsNotFound(err))
}

func TestGetBoardsByUser_EmptyMessages(t *testing.T) {
	repo := &mockRepository{
		listByUserAndCategory: func(_ context.Context, _ uint64, _ Category) ([]*Board, error) {
			return nil, nil
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	cases := []struct {
		category Category
		message  string
	}{
		{CategoryReview, "You haven't written any reviews yet."},
		{CategoryGuide, "You haven't written any guide posts yet."},
		{CategoryCompanion, "You haven't written any companion posts yet."},
	}
	for _, tc := range cases {
		resp, err := svc.GetBoardsByUser(context.Background(), 42, tc.category)

		require.NoError(t, err)
		assert.Equal(t, tc.message, resp.Message)
		assert.Empty(t, resp.Boards)
	}
}

func TestGetAllBoards_LikeSortRanksInMemory(t *testing.T) {
	likeCounts := map[uint64]int64{1: 2, 2: 9, 3: 5}
	repo := &mockRepository{
		listAll: func(_ context.Context, _ ListFilter, sort SortSpec) ([]*Board, error) {
			assert.True(t, sort.Derived())
			return []*Board{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
		countLikes: func(_ context.Context, boardID uint64) (int64, error) {
			return likeCounts[boardID], nil
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	resp, err := svc.GetAllBoards(context.Background(),
		ListFilter{}, SortSpec{By: SortByLikes, Order: OrderDesc})

	require.NoError(t, err)
	require.Len(t, resp.Boards, 3)
	assert.Equal(t, uint64(2), resp.Boards[0].ID)
	assert.Equal(t, uint64(3), resp.Boards[1].ID)
	assert.Equal(t, uint64(1), resp.Boards[2].ID)
}

func TestGetBoardDetail_NotFound(t *testing.T) {
	repo := &mockRepository{
		findDetailByID: func(_ context.Context, _ uint64) (*Board, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	_, err := svc.GetBoardDetail(context.Background(), 99)

	assert.True(t, apperror.IsNotFound(err))
}

func TestGetMainBoards_RailsUseTheirOwnRanking(t *testing.T) {
	requested := map[Category]bool{}
	repo := &mockRepository{
		listTopByCategory: func(_ context.Context, category Category, limit int, byLikes bool) ([]*Board, error) {
			requested[category] = byLikes
			assert.Equal(t, 4, limit)
			return []*Board{{ID: 1}}, nil
		},
		countLikes: func(_ context.Context, _ uint64) (int64, error) { return 0, nil },
	}
	svc := newTestService(repo, &mockUserRepository{}, &mockStore{})

	resp, err := svc.GetMainBoards(context.Background())

	require.NoError(t, err)
	assert.True(t, requested[CategoryReview])
	assert.False(t, requested[CategoryGuide])
	assert.False(t, requested[CategoryCompanion])
	assert.Len(t, resp.Review, 1)
}
