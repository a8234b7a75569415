package service

import (
	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

type CommentService interface {
	Create(threadId string, payload domain.Payload, owner string) (domain.AddedComment, error)
	Delete(threadId, commentId, requester string) error
}

type Comment struct {
	storage       CommentStorage
	threadStorage ThreadStorage
	sanitizer     ContentSanitizer
}

type CommentStorage interface {
	CreateComment(data domain.CommentCreationData) (domain.Payload, error)
	// GetCommentById treats soft-deleted comments as absent.
	GetCommentById(id string) (domain.Comment, error)
	// GetCommentsByThreadId includes soft-deleted comments, ordered by
	// creation time ascending.
	GetCommentsByThreadId(threadId string) ([]domain.Comment, error)
	SoftDeleteComment(id string) error
}

func NewComment(storage CommentStorage, threads ThreadStorage, sanitizer ContentSanitizer) CommentService {
	return &Comment{storage, threads, sanitizer}
}

func (s *Comment) Create(threadId string, payload domain.Payload, owner string) (domain.AddedComment, error) {
	merged := make(domain.Payload, len(payload)+2)
	for k, v := range payload {
		merged[k] = v
	}
	merged["threadId"] = threadId
	merged["owner"] = owner

	data, err := domain.NewCommentCreationData(merged)
	if err != nil {
		return domain.AddedComment{}, err
	}
	data.Content = s.sanitizer.Clean(data.Content)

	if _, err := s.threadStorage.GetThreadById(data.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}

	row, err := s.storage.CreateComment(data)
	if err != nil {
		return domain.AddedComment{}, err
	}

	added, err := domain.NewAddedComment(row)
	if err != nil {
		return domain.AddedComment{}, &internal_errors.DomainError{Message: "malformed comment record from storage"}
	}
	return added, nil
}

// Delete flips the soft-delete flag. A second delete of the same comment
// fails with NotFoundError: deletion is deliberately not idempotent.
func (s *Comment) Delete(threadId, commentId, requester string) error {
	comment, err := s.storage.GetCommentById(commentId)
	if err != nil {
		return err
	}
	if comment.ThreadId != threadId {
		return &internal_errors.NotFoundError{Resource: "komentar"}
	}
	if err := VerifyOwner(comment.Owner, requester); err != nil {
		return err
	}
	return s.storage.SoftDeleteComment(commentId)
}
