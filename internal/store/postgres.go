package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"askroom/internal/models"
)

// Postgres implements Store over a shared *sql.DB pool. Every operation
// is a single parameterized statement.
type Postgres struct {
	DB *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) ListRooms(ctx context.Context) ([]models.Room, error) {
	rows, err := p.DB.QueryContext(ctx,
		`SELECT id, name, description, created_at FROM rooms ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		var r models.Room
		var desc sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &desc, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		r.Description = desc.String
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

func (p *Postgres) CreateRoom(ctx context.Context, name, description string) (models.Room, error) {
	r := models.Room{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
	err := p.DB.QueryRowContext(ctx,
		`INSERT INTO rooms (id, name, description) VALUES ($1, $2, NULLIF($3, '')) RETURNING created_at`,
		r.ID, r.Name, r.Description,
	).Scan(&r.CreatedAt)
	if err != nil {
		return models.Room{}, fmt.Errorf("insert room: %w", err)
	}
	return r, nil
}

func (p *Postgres) ListQuestions(ctx context.Context, roomID string) ([]models.Question, error) {
	rows, err := p.DB.QueryContext(ctx,
		`SELECT id, room_id, question, answer, created_at FROM questions
		 WHERE room_id = $1 ORDER BY created_at, id`, roomID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.RoomID, &q.Question, &q.Answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (p *Postgres) CreateQuestion(ctx context.Context, roomID, question string) (models.Question, error) {
	q := models.Question{
		ID:       uuid.NewString(),
		RoomID:   roomID,
		Question: question,
	}
	err := p.DB.QueryRowContext(ctx,
		`INSERT INTO questions (id, room_id, question) VALUES ($1, $2, $3) RETURNING created_at`,
		q.ID, q.RoomID, q.Question,
	).Scan(&q.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Question{}, ErrRoomNotFound
		}
		return models.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

func (p *Postgres) CreateAudioChunk(ctx context.Context, roomID string, audio []byte, transcript *string) (models.AudioChunk, error) {
	c := models.AudioChunk{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		Audio:      audio,
		Transcript: transcript,
	}
	err := p.DB.QueryRowContext(ctx,
		`INSERT INTO audio_chunks (id, room_id, audio, transcript) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		c.ID, c.RoomID, c.Audio, c.Transcript,
	).Scan(&c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.AudioChunk{}, ErrRoomNotFound
		}
		return models.AudioChunk{}, fmt.Errorf("insert audio chunk: %w", err)
	}
	return c, nil
}

func (p *Postgres) Reset(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, `TRUNCATE rooms, questions, audio_chunks`); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// isForeignKeyViolation reports whether err is Postgres error 23503,
// raised when an insert references a missing room.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
