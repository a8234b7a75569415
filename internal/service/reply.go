package service

import (
	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

type ReplyService interface {
	Create(threadId, commentId string, payload domain.Payload, owner string) (domain.AddedReply, error)
	Delete(threadId, commentId, replyId, requester string) error
}

type Reply struct {
	storage        ReplyStorage
	commentStorage CommentStorage
	threadStorage  ThreadStorage
	sanitizer      ContentSanitizer
}

type ReplyStorage interface {
	CreateReply(data domain.ReplyCreationData) (domain.Payload, error)
	// GetReplyById treats soft-deleted replies as absent.
	GetReplyById(id string) (domain.Reply, error)
	// GetRepliesByThreadId includes soft-deleted replies for every comment of
	// the thread, ordered by creation time ascending.
	GetRepliesByThreadId(threadId string) ([]domain.Reply, error)
	SoftDeleteReply(id string) error
}

func NewReply(storage ReplyStorage, comments CommentStorage, threads ThreadStorage, sanitizer ContentSanitizer) ReplyService {
	return &Reply{storage, comments, threads, sanitizer}
}

// mustCommentInThread resolves the parent comment and checks route integrity:
// the comment must exist (not soft-deleted) and belong to the given thread.
func (s *Reply) mustCommentInThread(threadId, commentId string) (domain.Comment, error) {
	if _, err := s.threadStorage.GetThreadById(threadId); err != nil {
		return domain.Comment{}, err
	}
	comment, err := s.commentStorage.GetCommentById(commentId)
	if err != nil {
		return domain.Comment{}, err
	}
	if comment.ThreadId != threadId {
		return domain.Comment{}, &internal_errors.NotFoundError{Resource: "komentar"}
	}
	return comment, nil
}

func (s *Reply) Create(threadId, commentId string, payload domain.Payload, owner string) (domain.AddedReply, error) {
	merged := make(domain.Payload, len(payload)+2)
	for k, v := range payload {
		merged[k] = v
	}
	merged["commentId"] = commentId
	merged["owner"] = owner

	data, err := domain.NewReplyCreationData(merged)
	if err != nil {
		return domain.AddedReply{}, err
	}
	data.Content = s.sanitizer.Clean(data.Content)

	if _, err := s.mustCommentInThread(threadId, data.CommentId); err != nil {
		return domain.AddedReply{}, err
	}

	row, err := s.storage.CreateReply(data)
	if err != nil {
		return domain.AddedReply{}, err
	}

	added, err := domain.NewAddedReply(row)
	if err != nil {
		return domain.AddedReply{}, &internal_errors.DomainError{Message: "malformed reply record from storage"}
	}
	return added, nil
}

func (s *Reply) Delete(threadId, commentId, replyId, requester string) error {
	if _, err := s.mustCommentInThread(threadId, commentId); err != nil {
		return err
	}
	reply, err := s.storage.GetReplyById(replyId)
	if err != nil {
		return err
	}
	if reply.CommentId != commentId {
		return &internal_errors.NotFoundError{Resource: "balasan"}
	}
	if err := VerifyOwner(reply.Owner, requester); err != nil {
		return err
	}
	return s.storage.SoftDeleteReply(replyId)
}
