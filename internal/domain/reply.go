package domain

import (
	"time"
)

// Reply has the same lifecycle as Comment but is scoped to a parent comment.
type Reply struct {
	Id        string
	CommentId string
	Content   string
	Owner     string
	Date      time.Time
	IsDelete  bool
}

const (
	entityReplyCreation = "REPLY_CREATION"
	entityAddedReply    = "ADDED_REPLY"

	// DeletedReplyContent replaces the content of soft-deleted replies in
	// thread detail views.
	DeletedReplyContent = "**balasan telah dihapus**"
)

// ReplyCreationData carries a validated add-reply request.
type ReplyCreationData struct {
	Content   string
	CommentId string
	Owner     string
}

func NewReplyCreationData(p Payload) (ReplyCreationData, error) {
	if err := requireFields(p, entityReplyCreation, "content", "commentId", "owner"); err != nil {
		return ReplyCreationData{}, err
	}

	content, err := stringField(p, entityReplyCreation, "content")
	if err != nil {
		return ReplyCreationData{}, err
	}
	commentId, err := stringField(p, entityReplyCreation, "commentId")
	if err != nil {
		return ReplyCreationData{}, err
	}
	owner, err := stringField(p, entityReplyCreation, "owner")
	if err != nil {
		return ReplyCreationData{}, err
	}

	return ReplyCreationData{Content: content, CommentId: commentId, Owner: owner}, nil
}

// AddedReply is the construction-result entity for a created reply.
type AddedReply struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(p Payload) (AddedReply, error) {
	if err := requireFields(p, entityAddedReply, "id", "content", "owner"); err != nil {
		return AddedReply{}, err
	}

	id, err := stringField(p, entityAddedReply, "id")
	if err != nil {
		return AddedReply{}, err
	}
	content, err := stringField(p, entityAddedReply, "content")
	if err != nil {
		return AddedReply{}, err
	}
	owner, err := stringField(p, entityAddedReply, "owner")
	if err != nil {
		return AddedReply{}, err
	}

	return AddedReply{Id: id, Content: content, Owner: owner}, nil
}

// ReplyDetail mirrors CommentDetail for nested replies.
type ReplyDetail struct {
	Id      string    `json:"id"`
	Content string    `json:"content"`
	Owner   string    `json:"owner"`
	Date    time.Time `json:"date"`
}

func NewReplyDetail(r Reply) ReplyDetail {
	content := r.Content
	if r.IsDelete {
		content = DeletedReplyContent
	}
	return ReplyDetail{
		Id:      r.Id,
		Content: content,
		Owner:   r.Owner,
		Date:    r.Date,
	}
}
