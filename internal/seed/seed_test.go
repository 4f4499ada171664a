package seed

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"askroom/internal/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunPopulatesFiveRoomsTwentyQuestions(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	if err := Run(ctx, st, testLogger()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	rooms, err := st.ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms failed: %v", err)
	}
	if len(rooms) != 5 {
		t.Fatalf("expected 5 rooms, got %d", len(rooms))
	}

	total := 0
	for _, r := range rooms {
		qs, err := st.ListQuestions(ctx, r.ID)
		if err != nil {
			t.Fatalf("ListQuestions failed: %v", err)
		}
		for _, q := range qs {
			if q.RoomID != r.ID {
				t.Errorf("question %s references wrong room", q.ID)
			}
		}
		total += len(qs)
	}
	if total != 20 {
		t.Errorf("expected 20 questions across all rooms, got %d", total)
	}
}

func TestRunWipesPreviousData(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	stale, _ := st.CreateRoom(ctx, "Stale room", "")
	st.CreateQuestion(ctx, stale.ID, "stale question")

	if err := Run(ctx, st, testLogger()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	rooms, _ := st.ListRooms(ctx)
	if len(rooms) != 5 {
		t.Fatalf("expected exactly 5 rooms after reseed, got %d", len(rooms))
	}
	for _, r := range rooms {
		if r.ID == stale.ID {
			t.Error("stale room survived the reset")
		}
	}
}
