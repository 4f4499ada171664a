package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"askroom/internal/store"
)

const (
	roomCount     = 5
	questionCount = 20
)

var roomNames = []string{
	"Acme Corp",
	"Globex Industries",
	"Initech Solutions",
	"Umbrella Labs",
	"Stark Holdings",
}

var roomDescriptions = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Sed do eiusmod tempor incididunt ut labore et dolore.",
	"Ut enim ad minim veniam, quis nostrud exercitation.",
	"Duis aute irure dolor in reprehenderit in voluptate.",
	"Excepteur sint occaecat cupidatat non proident.",
}

// Run wipes rooms and questions, then repopulates 5 synthetic rooms and
// 20 synthetic questions spread round-robin across them. Development
// environments only; never invoked by the running server.
func Run(ctx context.Context, st store.Store, log *logrus.Logger) error {
	if err := st.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	roomIDs := make([]string, 0, roomCount)
	for i := 0; i < roomCount; i++ {
		r, err := st.CreateRoom(ctx, roomNames[i], roomDescriptions[i])
		if err != nil {
			return fmt.Errorf("seed room %q: %w", roomNames[i], err)
		}
		roomIDs = append(roomIDs, r.ID)
	}

	for i := 0; i < questionCount; i++ {
		roomID := roomIDs[i%roomCount]
		text := fmt.Sprintf("What is the answer to sample question %d?", i+1)
		if _, err := st.CreateQuestion(ctx, roomID, text); err != nil {
			return fmt.Errorf("seed question %d: %w", i+1, err)
		}
	}

	log.WithFields(logrus.Fields{"rooms": roomCount, "questions": questionCount}).Info("database seeded")
	return nil
}
