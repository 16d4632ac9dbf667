package entity

import (
	"time"
)

// Ticket is a single listing in the marketplace. Field names in Firestore
// match the collection layout the web client reads ("tickets").
type Ticket struct {
	ID          string    `json:"id" firestore:"id"`
	ConcertName string    `json:"concert_name" firestore:"concertName"`
	City        string    `json:"city" firestore:"city"`
	Date        string    `json:"date" firestore:"date"`
	Price       float64   `json:"price" firestore:"price"`
	Contact     string    `json:"contact" firestore:"contact"`
	UserEmail   string    `json:"user_email,omitempty" firestore:"userEmail,omitempty"`
	// Server-assigned on create; clock skew between API replicas must not
	// influence feed ordering.
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`

	Premium        bool  `json:"premium" firestore:"premium"`
	PremiumPending bool  `json:"premium_pending" firestore:"premiumPending"`
	// PremiumUserChat is only meaningful while PremiumPending is set; it is
	// the Telegram chat the premium request came from, so the decision can
	// be routed back. Zero when the request came from the web.
	PremiumUserChat int64 `json:"premium_user_chat,omitempty" firestore:"premiumUserChat,omitempty"`

	Deleted bool `json:"deleted" firestore:"deleted"`
}
