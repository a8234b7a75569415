package service

import (
	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

type ThreadService interface {
	Create(payload domain.Payload, owner string) (domain.AddedThread, error)
	GetDetail(threadId string) (domain.ThreadDetail, error)
}

type Thread struct {
	storage        ThreadStorage
	commentStorage CommentStorage
	replyStorage   ReplyStorage
	likeStorage    LikeStorage
	sanitizer      ContentSanitizer
}

type ThreadStorage interface {
	// CreateThread persists the thread and returns the created row as a raw
	// payload (id generated by the storage's id capability).
	CreateThread(data domain.ThreadCreationData) (domain.Payload, error)
	// GetThreadById returns NotFoundError when the thread does not exist.
	GetThreadById(id string) (domain.Thread, error)
}

// ContentSanitizer strips markup from user-supplied text.
type ContentSanitizer interface {
	Clean(text string) string
}

func NewThread(storage ThreadStorage, comments CommentStorage, replies ReplyStorage, likes LikeStorage, sanitizer ContentSanitizer) ThreadService {
	return &Thread{storage, comments, replies, likes, sanitizer}
}

func (s *Thread) Create(payload domain.Payload, owner string) (domain.AddedThread, error) {
	merged := make(domain.Payload, len(payload)+1)
	for k, v := range payload {
		merged[k] = v
	}
	merged["owner"] = owner

	data, err := domain.NewThreadCreationData(merged)
	if err != nil {
		return domain.AddedThread{}, err
	}
	data.Title = s.sanitizer.Clean(data.Title)
	data.Body = s.sanitizer.Clean(data.Body)

	row, err := s.storage.CreateThread(data)
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := domain.NewAddedThread(row)
	if err != nil {
		// Client payload already validated; a bad row here is a storage bug.
		return domain.AddedThread{}, &internal_errors.DomainError{Message: "malformed thread record from storage"}
	}
	return added, nil
}

func (s *Thread) GetDetail(threadId string) (domain.ThreadDetail, error) {
	thread, err := s.storage.GetThreadById(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	// Soft-deleted comments and replies are included: they keep their place
	// in the thread with redacted content.
	comments, err := s.commentStorage.GetCommentsByThreadId(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	replies, err := s.replyStorage.GetRepliesByThreadId(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	repliesByComment := make(map[string][]domain.ReplyDetail)
	for _, r := range replies {
		repliesByComment[r.CommentId] = append(repliesByComment[r.CommentId], domain.NewReplyDetail(r))
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		likeCount, err := s.likeStorage.CountLikes(c.Id)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		details = append(details, domain.NewCommentDetail(c, likeCount, repliesByComment[c.Id]))
	}

	return domain.NewThreadDetail(thread, details), nil
}
