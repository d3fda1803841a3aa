package trip

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderAny    Gender = "ANY"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAny:
		return true
	}
	return false
}

// Trip carries the companion/guide constraints of a board: who may join and
// how many. It exists only for GUIDE and COMPANION boards.
type Trip struct {
	ID           uint64 `json:"id" gorm:"primaryKey"`
	BoardID      uint64 `json:"board_id" gorm:"not null;uniqueIndex"`
	AgeMin       int    `json:"age_min" gorm:"not null"`
	AgeMax       int    `json:"age_max" gorm:"not null"`
	TargetNumber int    `json:"target_number" gorm:"not null"`
	Gender       Gender `json:"gender" gorm:"type:varchar(10);not null"`
}

func (Trip) TableName() string {
	return "trips"
}

// Participant is one user who joined a trip.
type Participant struct {
	ID     uint64 `json:"id" gorm:"primaryKey"`
	TripID uint64 `json:"trip_id" gorm:"not null;uniqueIndex:idx_trip_user"`
	UserID uint64 `json:"user_id" gorm:"not null;uniqueIndex:idx_trip_user"`
}

func (Participant) TableName() string {
	return "users_in_travel"
}

type TripResponse struct {
	Trip             *Trip `json:"trip"`
	ParticipantCount int64 `json:"participantCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
