package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryCreateRoomAssignsFreshIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		r, err := m.CreateRoom(ctx, "Room", "")
		if err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
		if r.ID == "" {
			t.Fatal("empty room id")
		}
		if seen[r.ID] {
			t.Fatalf("duplicate room id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestMemoryQuestionsScopedToRoom(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	r1, _ := m.CreateRoom(ctx, "First", "")
	r2, _ := m.CreateRoom(ctx, "Second", "")

	if _, err := m.CreateQuestion(ctx, r1.ID, "only in first"); err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	if _, err := m.CreateQuestion(ctx, r2.ID, "only in second"); err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}

	qs, err := m.ListQuestions(ctx, r1.ID)
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].RoomID != r1.ID {
		t.Errorf("question leaked from another room")
	}
}

func TestMemoryCreateQuestionUnknownRoom(t *testing.T) {
	m := NewMemory()

	_, err := m.CreateQuestion(context.Background(), "no-such-room", "hello?")
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestMemoryListQuestionsUnknownRoomIsEmpty(t *testing.T) {
	m := NewMemory()

	qs, err := m.ListQuestions(context.Background(), "no-such-room")
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("expected empty slice, got %d questions", len(qs))
	}
}

func TestMemoryAudioChunkRequiresRoom(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.CreateAudioChunk(ctx, "no-such-room", []byte{1, 2, 3}, nil); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}

	r, _ := m.CreateRoom(ctx, "Audio room", "")
	transcript := "hello world"
	c, err := m.CreateAudioChunk(ctx, r.ID, []byte{1, 2, 3}, &transcript)
	if err != nil {
		t.Fatalf("CreateAudioChunk failed: %v", err)
	}
	if c.ID == "" || c.RoomID != r.ID {
		t.Errorf("unexpected chunk %+v", c)
	}
	if got := m.AudioChunks(); len(got) != 1 || *got[0].Transcript != "hello world" {
		t.Errorf("chunk not retrievable: %+v", got)
	}
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	r, _ := m.CreateRoom(ctx, "Doomed", "")
	m.CreateQuestion(ctx, r.ID, "gone soon")

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	rooms, _ := m.ListRooms(ctx)
	if len(rooms) != 0 {
		t.Errorf("expected no rooms after reset, got %d", len(rooms))
	}
}
