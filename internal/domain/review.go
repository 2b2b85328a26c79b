package domain

// Review is a public rating left on the review board. Reviews are never
// edited or deleted; the board is ordered newest-first.
type Review struct {
	ID     int64  `json:"id"`
	User   string `json:"user"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
}

// ReviewDateToday is the display date stamped on a freshly submitted review.
const ReviewDateToday = "Today"
