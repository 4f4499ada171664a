package store

import (
	"context"
	"errors"

	"askroom/internal/models"
)

// ErrRoomNotFound marks a write that referenced a room that does not
// exist. Handlers translate it to 404; every other store failure is a
// server fault.
var ErrRoomNotFound = errors.New("room not found")

// Store is the persistence surface used by handlers and the seeder.
// Postgres implements it in production; Memory substitutes for it in
// tests.
type Store interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	CreateRoom(ctx context.Context, name, description string) (models.Room, error)

	// ListQuestions returns an empty slice for an unknown room.
	ListQuestions(ctx context.Context, roomID string) ([]models.Question, error)
	CreateQuestion(ctx context.Context, roomID, question string) (models.Question, error)

	CreateAudioChunk(ctx context.Context, roomID string, audio []byte, transcript *string) (models.AudioChunk, error)

	// Reset wipes rooms, questions and audio chunks. Development use only.
	Reset(ctx context.Context) error
}
