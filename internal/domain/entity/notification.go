package entity

import "time"

// Notification is a broadcast feed entry. The read flag is global, not
// per-user: the feed is shared by every viewer.
type Notification struct {
	ID        string    `json:"id" firestore:"id"`
	Text      string    `json:"text" firestore:"text"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}
