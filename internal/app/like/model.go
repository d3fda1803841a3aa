package like

// Like is an existence-only (user, board) record. Listings count likes, they
// never enumerate them.
type Like struct {
	ID      uint64 `json:"id" gorm:"primaryKey"`
	BoardID uint64 `json:"board_id" gorm:"not null;uniqueIndex:idx_like_board_user"`
	UserID  uint64 `json:"user_id" gorm:"not null;uniqueIndex:idx_like_board_user"`
}

func (Like) TableName() string {
	return "likes"
}

type ToggleResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
