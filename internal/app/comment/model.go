package comment

import "time"

type Comment struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	BoardID   uint64    `json:"board_id" gorm:"not null;index"`
	UserID    uint64    `json:"user_id" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`

	// AuthorName is joined from users at read time, never stored.
	AuthorName string `json:"author_name" gorm:"->;-:migration"`
}

func (Comment) TableName() string {
	return "comments"
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type CommentListResponse struct {
	Comments []*Comment `json:"comments"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
