package domain

// Comment is a rating left by one party of a Completed booking about the
// other. At most one per (booking, reviewer) direction.
type Comment struct {
	ID         int32  `json:"id"`
	BookingID  int32  `json:"booking_id"`
	ReviewerID int32  `json:"reviewer_id"`
	RevieweeID int32  `json:"reviewee_id"`
	Rate       int32  `json:"rate"` // 1..5 inclusive
	Content    string `json:"content"`
	CreatedOn  string `json:"created_on"`
}
