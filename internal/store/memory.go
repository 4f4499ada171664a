package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"askroom/internal/models"
)

// Memory is an in-process Store used by tests and local experiments. It
// enforces the same referential rules as the Postgres schema.
type Memory struct {
	mu     sync.Mutex
	rooms  []models.Room
	qs     []models.Question
	chunks []models.AudioChunk
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ListRooms(ctx context.Context) ([]models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Room, len(m.rooms))
	copy(out, m.rooms)
	return out, nil
}

func (m *Memory) CreateRoom(ctx context.Context, name, description string) (models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := models.Room{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	m.rooms = append(m.rooms, r)
	return r, nil
}

func (m *Memory) ListQuestions(ctx context.Context, roomID string) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Question{}
	for _, q := range m.qs {
		if q.RoomID == roomID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *Memory) CreateQuestion(ctx context.Context, roomID, question string) (models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.roomExists(roomID) {
		return models.Question{}, ErrRoomNotFound
	}
	q := models.Question{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		Question:  question,
		CreatedAt: time.Now().UTC(),
	}
	m.qs = append(m.qs, q)
	return q, nil
}

func (m *Memory) CreateAudioChunk(ctx context.Context, roomID string, audio []byte, transcript *string) (models.AudioChunk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.roomExists(roomID) {
		return models.AudioChunk{}, ErrRoomNotFound
	}
	c := models.AudioChunk{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		Audio:      append([]byte(nil), audio...),
		Transcript: transcript,
		CreatedAt:  time.Now().UTC(),
	}
	m.chunks = append(m.chunks, c)
	return c, nil
}

func (m *Memory) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms, m.qs, m.chunks = nil, nil, nil
	return nil
}

// AudioChunks returns a copy of everything uploaded so far. Test helper;
// no HTTP route reads chunks back.
func (m *Memory) AudioChunks() []models.AudioChunk {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.AudioChunk, len(m.chunks))
	copy(out, m.chunks)
	return out
}

func (m *Memory) roomExists(roomID string) bool {
	for _, r := range m.rooms {
		if r.ID == roomID {
			return true
		}
	}
	return false
}
