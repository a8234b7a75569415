package pg

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

func (s *Storage) IsLiked(commentId, owner string) (bool, error) {
	var liked bool
	err := s.db.QueryRow(`
        SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND owner = $2)
    `, commentId, owner).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return liked, nil
}

func (s *Storage) AddLike(commentId, owner string) error {
	id := s.gen.Generate("like")

	_, err := s.db.Exec(`
        INSERT INTO comment_likes (id, comment_id, owner)
        VALUES ($1, $2, $3)
    `, id, commentId, owner)
	if err != nil {
		// The unique (comment_id, owner) pair guards the one-like invariant.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return &internal_errors.DomainError{Message: "comment already liked by user"}
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) RemoveLike(commentId, owner string) error {
	_, err := s.db.Exec(`
        DELETE FROM comment_likes WHERE comment_id = $1 AND owner = $2
    `, commentId, owner)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) CountLikes(commentId string) (int, error) {
	var count int
	err := s.db.QueryRow(`
        SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1
    `, commentId).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
