package domain

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketStatusNew     TicketStatus = "new"
	TicketStatusReplied TicketStatus = "replied"
)

// SupportMessage is a recorded support request. Status moves from "new" to
// "replied" through an explicit admin action and never back.
type SupportMessage struct {
	ID      int64        `json:"id"`
	Contact string       `json:"contact"`
	Text    string       `json:"text"`
	Date    string       `json:"date"`
	Status  TicketStatus `json:"status"`
}
