package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

func (s *Storage) CreateReply(data domain.ReplyCreationData) (domain.Payload, error) {
	id := s.gen.Generate("reply")
	date := s.clock.Now()

	_, err := s.db.Exec(`
        INSERT INTO replies (id, comment_id, content, owner, date)
        VALUES ($1, $2, $3, $4, $5)
    `, id, data.CommentId, data.Content, data.Owner, date)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reply: %w", err)
	}

	return domain.Payload{"id": id, "content": data.Content, "owner": data.Owner}, nil
}

// GetReplyById treats soft-deleted replies as absent.
func (s *Storage) GetReplyById(id string) (domain.Reply, error) {
	var reply domain.Reply
	err := s.db.QueryRow(`
        SELECT id, comment_id, content, owner, date, is_delete
        FROM replies
        WHERE id = $1 AND is_delete = FALSE
    `, id).Scan(&reply.Id, &reply.CommentId, &reply.Content, &reply.Owner, &reply.Date, &reply.IsDelete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, &internal_errors.NotFoundError{Resource: "balasan"}
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch reply: %w", err)
	}
	return reply, nil
}

// GetRepliesByThreadId returns every reply under the thread's comments,
// soft-deleted ones included, ordered by creation time ascending.
func (s *Storage) GetRepliesByThreadId(threadId string) ([]domain.Reply, error) {
	rows, err := s.db.Query(`
        SELECT r.id, r.comment_id, r.content, r.owner, r.date, r.is_delete
        FROM replies r
        JOIN comments c ON r.comment_id = c.id
        WHERE c.thread_id = $1
        ORDER BY r.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.Reply
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(&reply.Id, &reply.CommentId, &reply.Content, &reply.Owner, &reply.Date, &reply.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, reply)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

func (s *Storage) SoftDeleteReply(id string) error {
	res, err := s.db.Exec(`
        UPDATE replies SET is_delete = TRUE
        WHERE id = $1 AND is_delete = FALSE
    `, id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Resource: "balasan"}
	}
	return nil
}
