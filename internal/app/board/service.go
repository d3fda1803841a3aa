package board

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"backend/internal/apperror"
	"backend/internal/app/image"
	"backend/internal/app/trip"
	"backend/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mainPageLimit is how many boards each main-page rail shows.
const mainPageLimit = 4

// ObjectStore puts and removes board images in object storage. Upload returns
// the public URL of the stored object.
type ObjectStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, url string) error
}

type Service interface {
	GetAllBoards(ctx context.Context, filter ListFilter, sort SortSpec) (*SummaryListResponse, error)
	GetBoardDetail(ctx context.Context, id uint64) (*Detail, error)
	GetMainBoards(ctx context.Context) (*MainResponse, error)
	GetBoardsByUser(ctx context.Context, userID uint64, category Category) (*SimpleListResponse, error)
	GetLikedBoards(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) (*SummaryListResponse, error)
	GetParticipatedBoards(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) (*ParticipatedResponse, error)
	CreateBoard(ctx context.Context, userID uint64, req CreateBoardRequest, files []*multipart.FileHeader) (uint64, error)
	UpdateBoard(ctx context.Context, userID, boardID uint64, req CreateBoardRequest, files []*multipart.FileHeader) error
	DeleteBoard(ctx context.Context, userID, boardID uint64) error
}

type service struct {
	repo      Repository
	users     user.Repository
	store     ObjectStore
	maxImages int
	logger    *zap.SugaredLogger
}

func NewService(repo Repository, users user.Repository, store ObjectStore, maxImages int, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		users:     users,
		store:     store,
		maxImages: maxImages,
		logger:    logger.Sugar(),
	}
}

// summaries attaches like counts to each board and, for derived sort keys,
// runs the in-memory ranking pass.
func (s *service) summaries(ctx context.Context, boards []*Board, sort SortSpec) ([]Summary, error) {
	items := make([]Summary, 0, len(boards))
	for _, b := range boards {
		count, err := s.repo.CountLikes(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count likes for board %d: %w", b.ID, err)
		}
		items = append(items, NewSummary(b, count))
	}
	if sort.Derived() {
		SortByLikeCount(items, sort.Order)
	}
	return items, nil
}

func (s *service) GetAllBoards(ctx context.Context, filter ListFilter, sort SortSpec) (*SummaryListResponse, error) {
	boards, err := s.repo.ListAll(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	items, err := s.summaries(ctx, boards, sort)
	if err != nil {
		return nil, err
	}
	return &SummaryListResponse{Boards: items}, nil
}

func (s *service) GetBoardDetail(ctx context.Context, id uint64) (*Detail, error) {
	b, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("board not found")
		}
		return nil, fmt.Errorf("failed to load board %d: %w", id, err)
	}

	rt, err := s.repo.RouteWithDays(ctx, b.RouteID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load route %d: %w", b.RouteID, err)
	}

	var t *trip.Trip
	if b.Category.RequiresTrip() {
		t, err = s.repo.TripByBoard(ctx, b.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load trip for board %d: %w", b.ID, err)
		}
	}

	likeCount, err := s.repo.CountLikes(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes for board %d: %w", b.ID, err)
	}

	detail := NewDetail(b, rt, t, likeCount)
	return &detail, nil
}

func (s *service) mainCards(ctx context.Context, category Category, byLikes bool) ([]MainCard, error) {
	boards, err := s.repo.ListTopByCategory(ctx, category, mainPageLimit, byLikes)
	if err != nil {
		return nil, fmt.Errorf("failed to list top %s boards: %w", category, err)
	}
	cards := make([]MainCard, 0, len(boards))
	for _, b := range boards {
		count, err := s.repo.CountLikes(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count likes for board %d: %w", b.ID, err)
		}
		cards = append(cards, NewMainCard(b, count))
	}
	return cards, nil
}

// GetMainBoards assembles the landing page rails: reviews ranked by like
// count, guides and companion posts by recency.
func (s *service) GetMainBoards(ctx context.Context) (*MainResponse, error) {
	review, err := s.mainCards(ctx, CategoryReview, true)
	if err != nil {
		return nil, err
	}
	guide, err := s.mainCards(ctx, CategoryGuide, false)
	if err != nil {
		return nil, err
	}
	companion, err := s.mainCards(ctx, CategoryCompanion, false)
	if err != nil {
		return nil, err
	}
	return &MainResponse{Review: review, Guide: guide, Companion: companion}, nil
}

func emptyListMessage(category Category) string {
	switch category {
	case CategoryReview:
		return "You haven't written any reviews yet."
	case CategoryGuide:
		return "You haven't written any guide posts yet."
	default:
		return "You haven't written any companion posts yet."
	}
}

func (s *service) GetBoardsByUser(ctx context.Context, userID uint64, category Category) (*SimpleListResponse, error) {
	if !category.Valid() {
		return nil, apperror.BadRequest("unknown category: " + string(category))
	}

	boards, err := s.repo.ListByUserAndCategory(ctx, userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards of user %d: %w", userID, err)
	}

	cards := make([]SimpleCard, 0, len(boards))
	for _, b := range boards {
		cards = append(cards, NewSimpleCard(b))
	}

	message := "Boards fetched successfully."
	if len(cards) == 0 {
		message = emptyListMessage(category)
	}
	return &SimpleListResponse{Message: message, Boards: cards}, nil
}

func (s *service) GetLikedBoards(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) (*SummaryListResponse, error) {
	boards, err := s.repo.ListLikedByUser(ctx, userID, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked boards of user %d: %w", userID, err)
	}
	items, err := s.summaries(ctx, boards, sort)
	if err != nil {
		return nil, err
	}
	return &SummaryListResponse{Boards: items}, nil
}

// GetParticipatedBoards lists boards whose trip the user joined. REVIEW
// boards never carry a trip, so asking for them is a request error; an empty
// result is reported as not found rather than an empty page.
func (s *service) GetParticipatedBoards(ctx context.Context, userID uint64, filter ListFilter, sort SortSpec) (*ParticipatedResponse, error) {
	if filter.Category != nil && !filter.Category.RequiresTrip() {
		return nil, apperror.BadRequest("review boards have no trips to participate in")
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	boards, err := s.repo.ListParticipatedByUser(ctx, userID, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list participated boards of user %d: %w", userID, err)
	}
	if len(boards) == 0 {
		return nil, apperror.NotFound("no participated trips found")
	}

	items, err := s.summaries(ctx, boards, sort)
	if err != nil {
		return nil, err
	}
	return &ParticipatedResponse{
		Message: "Participated trips fetched successfully.",
		Boards:  items,
	}, nil
}

// tripFromRequest validates and builds the trip sub-aggregate for GUIDE and
// COMPANION boards.
func tripFromRequest(req CreateBoardRequest, boardID uint64) (*trip.Trip, error) {
	gender := trip.Gender(req.Gender)
	if !gender.Valid() {
		return nil, apperror.BadRequest("unknown gender constraint: " + req.Gender)
	}
	if req.AgeMin < 0 || req.AgeMax < req.AgeMin {
		return nil, apperror.BadRequest("invalid age range")
	}
	if req.TargetNumber < 1 {
		return nil, apperror.BadRequest("target number must be at least 1")
	}
	return &trip.Trip{
		BoardID:      boardID,
		AgeMin:       req.AgeMin,
		AgeMax:       req.AgeMax,
		TargetNumber: req.TargetNumber,
		Gender:       gender,
	}, nil
}

// uploadImages stores the files in upload order and records one row per
// object, preserving the representative-image invariant.
func (s *service) uploadImages(ctx context.Context, r Repository, boardID uint64, files []*multipart.FileHeader) ([]string, error) {
	uploaded := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.store.Upload(ctx, file)
		if err != nil {
			return uploaded, fmt.Errorf("failed to upload image %q: %w", file.Filename, err)
		}
		uploaded = append(uploaded, url)
		if err := r.CreateImage(ctx, &image.Image{BoardID: boardID, URL: url}); err != nil {
			return uploaded, fmt.Errorf("failed to record image: %w", err)
		}
	}
	return uploaded, nil
}

// dropObjects removes stored objects best-effort, logging what it cannot
// remove.
func (s *service) dropObjects(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.store.Delete(ctx, url); err != nil {
			s.logger.Warnw("Failed to remove stored object", "url", url, "error", err)
		}
	}
}

// CreateBoard persists the board, its images and, for GUIDE/COMPANION
// categories, its trip in one transaction, then re-evaluates the author's
// role tier.
func (s *service) CreateBoard(ctx context.Context, userID uint64, req CreateBoardRequest, files []*multipart.FileHeader) (uint64, error) {
	category := Category(req.Category)
	if !category.Valid() {
		return 0, apperror.BadRequest("unknown category: " + req.Category)
	}
	if len(files) > s.maxImages {
		return 0, apperror.BadRequest(fmt.Sprintf("too many images: at most %d per board", s.maxImages))
	}
	if category.RequiresTrip() {
		if _, err := tripFromRequest(req, 0); err != nil {
			return 0, err
		}
	}

	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.NotFound("user not found")
		}
		return 0, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	exists, err := s.repo.RouteExists(ctx, req.RouteID)
	if err != nil {
		return 0, fmt.Errorf("failed to check route %d: %w", req.RouteID, err)
	}
	if !exists {
		return 0, apperror.NotFound("route not found")
	}

	b := &Board{
		AuthorID:  userID,
		RouteID:   req.RouteID,
		Title:     req.Title,
		Summary:   req.Summary,
		Content:   req.Content,
		Category:  category,
		CreatedAt: time.Now(),
	}

	var uploaded []string
	err = s.repo.Transaction(ctx, func(r Repository) error {
		if err := r.Create(ctx, b); err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}

		uploaded, err = s.uploadImages(ctx, r, b.ID, files)
		if err != nil {
			return err
		}

		if category.RequiresTrip() {
			t, err := tripFromRequest(req, b.ID)
			if err != nil {
				return err
			}
			if err := r.UpsertTrip(ctx, t); err != nil {
				return fmt.Errorf("failed to create trip: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.dropObjects(ctx, uploaded)
		return 0, err
	}

	s.logger.Infow("Board created",
		"board_id", b.ID, "user_id", userID, "category", category, "images", len(files))

	s.maybePromote(ctx, author)
	return b.ID, nil
}

// maybePromote re-evaluates the author's role tier after every create. The
// threshold counts companion boards, but any post can be the one that tips
// the account-age condition. The board is already committed, so a failed
// promotion is logged and retried naturally on the next create.
func (s *service) maybePromote(ctx context.Context, author *user.User) {
	count, err := s.repo.CountByUserAndCategory(ctx, author.ID, CategoryCompanion)
	if err != nil {
		s.logger.Errorw("Failed to count companion boards", "user_id", author.ID, "error", err)
		return
	}
	if !user.QualifiesForPromotion(author.Role, count, author.CreatedAt, time.Now()) {
		return
	}
	if err := s.users.UpdateRole(ctx, author.ID, user.RoleAll); err != nil {
		s.logger.Errorw("Failed to promote user", "user_id", author.ID, "error", err)
		return
	}
	s.logger.Infow("User promoted", "user_id", author.ID, "role", user.RoleAll)
}

// UpdateBoard replaces the board wholesale: every field is overwritten from
// the request and the creation timestamp resets, moving the board to the top
// of recency-ordered listings. A non-empty file set replaces all images.
func (s *service) UpdateBoard(ctx context.Context, userID, boardID uint64, req CreateBoardRequest, files []*multipart.FileHeader) error {
	category := Category(req.Category)
	if !category.Valid() {
		return apperror.BadRequest("unknown category: " + req.Category)
	}
	if len(files) > s.maxImages {
		return apperror.BadRequest(fmt.Sprintf("too many images: at most %d per board", s.maxImages))
	}

	b, err := s.repo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("board not found")
		}
		return fmt.Errorf("failed to load board %d: %w", boardID, err)
	}
	if b.AuthorID != userID {
		return apperror.Unauthorized("not the author of this board")
	}

	exists, err := s.repo.RouteExists(ctx, req.RouteID)
	if err != nil {
		return fmt.Errorf("failed to check route %d: %w", req.RouteID, err)
	}
	if !exists {
		return apperror.NotFound("route not found")
	}

	var newTrip *trip.Trip
	if category.RequiresTrip() {
		newTrip, err = tripFromRequest(req, boardID)
		if err != nil {
			return err
		}
	}

	var replaced []*image.Image
	if len(files) > 0 {
		replaced, err = s.repo.ImagesByBoard(ctx, boardID)
		if err != nil {
			return fmt.Errorf("failed to load images of board %d: %w", boardID, err)
		}
	}

	b.RouteID = req.RouteID
	b.Title = req.Title
	b.Summary = req.Summary
	b.Content = req.Content
	b.Category = category
	b.CreatedAt = time.Now()

	var uploaded []string
	err = s.repo.Transaction(ctx, func(r Repository) error {
		if err := r.Update(ctx, b); err != nil {
			return fmt.Errorf("failed to update board %d: %w", boardID, err)
		}

		if len(files) > 0 {
			if err := r.DeleteImagesByBoard(ctx, boardID); err != nil {
				return fmt.Errorf("failed to drop image rows: %w", err)
			}
			uploaded, err = s.uploadImages(ctx, r, boardID, files)
			if err != nil {
				return err
			}
		}

		if newTrip != nil {
			if err := r.UpsertTrip(ctx, newTrip); err != nil {
				return fmt.Errorf("failed to update trip: %w", err)
			}
			return nil
		}

		// The category no longer carries a trip; drop it with its roster.
		t, err := r.TripByBoard(ctx, boardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load trip for board %d: %w", boardID, err)
		}
		if err := r.DeleteParticipantsByTrip(ctx, t.ID); err != nil {
			return fmt.Errorf("failed to drop participants: %w", err)
		}
		if err := r.DeleteTripByBoard(ctx, boardID); err != nil {
			return fmt.Errorf("failed to drop trip: %w", err)
		}
		return nil
	})
	if err != nil {
		s.dropObjects(ctx, uploaded)
		return err
	}

	if len(replaced) > 0 {
		urls := make([]string, 0, len(replaced))
		for _, img := range replaced {
			urls = append(urls, img.URL)
		}
		s.dropObjects(ctx, urls)
	}

	s.logger.Infow("Board updated", "board_id", boardID, "user_id", userID)
	return nil
}

// DeleteBoard removes the board and everything hanging off it. Rows go in
// dependency order inside one transaction: images, trip roster, trip, likes,
// comments, then the board itself.
func (s *service) DeleteBoard(ctx context.Context, userID, boardID uint64) error {
	b, err := s.repo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("board not found")
		}
		return fmt.Errorf("failed to load board %d: %w", boardID, err)
	}
	if b.AuthorID != userID {
		return apperror.Unauthorized("not the author of this board")
	}

	var t *trip.Trip
	if b.Category.RequiresTrip() {
		t, err = s.repo.TripByBoard(ctx, boardID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("trip not found")
			}
			return fmt.Errorf("failed to load trip for board %d: %w", boardID, err)
		}
	}

	images, err := s.repo.ImagesByBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to load images of board %d: %w", boardID, err)
	}

	err = s.repo.Transaction(ctx, func(r Repository) error {
		if err := r.DeleteImagesByBoard(ctx, boardID); err != nil {
			return fmt.Errorf("failed to drop image rows: %w", err)
		}
		if t != nil {
			if err := r.DeleteParticipantsByTrip(ctx, t.ID); err != nil {
				return fmt.Errorf("failed to drop participants: %w", err)
			}
			if err := r.DeleteTripByBoard(ctx, boardID); err != nil {
				return fmt.Errorf("failed to drop trip: %w", err)
			}
		}
		if err := r.DeleteLikesByBoard(ctx, boardID); err != nil {
			return fmt.Errorf("failed to drop likes: %w", err)
		}
		if err := r.DeleteCommentsByBoard(ctx, boardID); err != nil {
			return fmt.Errorf("failed to drop comments: %w", err)
		}
		if err := r.Delete(ctx, boardID); err != nil {
			return fmt.Errorf("failed to delete board %d: %w", boardID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	s.dropObjects(ctx, urls)

	s.logger.Infow("Board deleted", "board_id", boardID, "user_id", userID)
	return nil
}
