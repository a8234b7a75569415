package service

import (
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

type LikeService interface {
	// Toggle flips the like state of (comment, user): inserts the like row
	// when absent, removes it when present. Callers cannot pick an end state.
	Toggle(threadId, commentId, userId string) error
}

type Like struct {
	storage        LikeStorage
	commentStorage CommentStorage
}

type LikeStorage interface {
	IsLiked(commentId, owner string) (bool, error)
	AddLike(commentId, owner string) error
	RemoveLike(commentId, owner string) error
	CountLikes(commentId string) (int, error)
}

func NewLike(storage LikeStorage, comments CommentStorage) LikeService {
	return &Like{storage, comments}
}

func (s *Like) Toggle(threadId, commentId, userId string) error {
	comment, err := s.commentStorage.GetCommentById(commentId)
	if err != nil {
		return err
	}
	if comment.ThreadId != threadId {
		return &internal_errors.NotFoundError{Resource: "komentar"}
	}

	liked, err := s.storage.IsLiked(commentId, userId)
	if err != nil {
		return err
	}
	if liked {
		return s.storage.RemoveLike(commentId, userId)
	}
	return s.storage.AddLike(commentId, userId)
}
