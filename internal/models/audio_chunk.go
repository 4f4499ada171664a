package models

import "time"

// AudioChunk holds one uploaded clip. The raw audio never leaves the
// server, so it is excluded from JSON.
type AudioChunk struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	Audio      []byte    `json:"-"`
	Transcript *string   `json:"transcript,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
