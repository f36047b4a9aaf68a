package models

import "time"

// Attachment is a file stored by the backend under an animal. URL points
// at the backend's file storage; the console only lists and deletes.
type Attachment struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}
