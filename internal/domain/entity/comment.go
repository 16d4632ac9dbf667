package entity

import "time"

// Comment lives in the "comments" sub-collection of its ticket. Comments are
// immutable once written.
type Comment struct {
	ID        string    `json:"id" firestore:"id"`
	TicketID  string    `json:"ticket_id" firestore:"-"`
	UserEmail string    `json:"user_email" firestore:"userEmail"`
	Text      string    `json:"text" firestore:"text"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}
