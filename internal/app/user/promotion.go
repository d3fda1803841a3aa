package user

import "time"

const (
	// PromotionBoardThreshold is the lifetime number of COMPANION boards
	// required before an account can be promoted to RoleAll.
	PromotionBoardThreshold = 20
	// PromotionAccountAgeMonths is the minimum account age in calendar months.
	PromotionAccountAgeMonths = 6
)

// QualifiesForPromotion decides whether an author should be promoted to
// RoleAll. It is evaluated synchronously after every board create and is
// one-way: accounts already above RoleUser never qualify again.
func QualifiesForPromotion(role Role, companionBoards int64, signedUpAt, now time.Time) bool {
	if role != RoleUser {
		return false
	}
	if companionBoards < PromotionBoardThreshold {
		return false
	}
	return monthsBetween(signedUpAt, now) >= PromotionAccountAgeMonths
}

// monthsBetween counts whole calendar months from one date to another,
// borrowing a month when the end day-of-month falls short of the start's.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}
