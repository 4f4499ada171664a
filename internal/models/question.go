package models

import "time"

type Question struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	Question  string    `json:"question"`
	Answer    *string   `json:"answer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
