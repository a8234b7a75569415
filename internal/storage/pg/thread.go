package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.Payload, error) {
	id := s.gen.Generate("thread")
	date := s.clock.Now()

	_, err := s.db.Exec(`
        INSERT INTO threads (id, title, body, owner, date)
        VALUES ($1, $2, $3, $4, $5)
    `, id, data.Title, data.Body, data.Owner, date)
	if err != nil {
		return nil, fmt.Errorf("failed to insert thread: %w", err)
	}

	return domain.Payload{"id": id, "title": data.Title, "owner": data.Owner}, nil
}

func (s *Storage) GetThreadById(id string) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT id, title, body, owner, date
        FROM threads
        WHERE id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Owner, &thread.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.NotFoundError{Resource: "thread"}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}
