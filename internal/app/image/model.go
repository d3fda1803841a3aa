package image

// Image is one uploaded picture of a board. Rows are inserted in upload order,
// so the lowest id is the board's representative image.
type Image struct {
	ID      uint64 `json:"id" gorm:"primaryKey"`
	BoardID uint64 `json:"board_id" gorm:"not null;index"`
	URL     string `json:"url" gorm:"not null"`
}

func (Image) TableName() string {
	return "board_images"
}
