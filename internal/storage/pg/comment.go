package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

func (s *Storage) CreateComment(data domain.CommentCreationData) (domain.Payload, error) {
	id := s.gen.Generate("comment")
	date := s.clock.Now()

	_, err := s.db.Exec(`
        INSERT INTO comments (id, thread_id, content, owner, date)
        VALUES ($1, $2, $3, $4, $5)
    `, id, data.ThreadId, data.Content, data.Owner, date)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return domain.Payload{"id": id, "content": data.Content, "owner": data.Owner}, nil
}

// GetCommentById treats soft-deleted comments as absent.
func (s *Storage) GetCommentById(id string) (domain.Comment, error) {
	var comment domain.Comment
	err := s.db.QueryRow(`
        SELECT id, thread_id, content, owner, date, is_delete
        FROM comments
        WHERE id = $1 AND is_delete = FALSE
    `, id).Scan(&comment.Id, &comment.ThreadId, &comment.Content, &comment.Owner, &comment.Date, &comment.IsDelete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, &internal_errors.NotFoundError{Resource: "komentar"}
		}
		return domain.Comment{}, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return comment, nil
}

// GetCommentsByThreadId includes soft-deleted comments so the thread detail
// view can render their tombstones in place.
func (s *Storage) GetCommentsByThreadId(threadId string) ([]domain.Comment, error) {
	rows, err := s.db.Query(`
        SELECT id, thread_id, content, owner, date, is_delete
        FROM comments
        WHERE thread_id = $1
        ORDER BY date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.Id, &comment.ThreadId, &comment.Content, &comment.Owner, &comment.Date, &comment.IsDelete); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

func (s *Storage) SoftDeleteComment(id string) error {
	res, err := s.db.Exec(`
        UPDATE comments SET is_delete = TRUE
        WHERE id = $1 AND is_delete = FALSE
    `, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Resource: "komentar"}
	}
	return nil
}
