package domain

import (
	"time"
)

// Comment belongs to exactly one thread. Deletion never removes the row,
// only flips IsDelete.
type Comment struct {
	Id       string
	ThreadId string
	Content  string
	Owner    string
	Date     time.Time
	IsDelete bool
}

const (
	entityCommentCreation = "COMMENT_CREATION"
	entityAddedComment    = "ADDED_COMMENT"

	// DeletedCommentContent replaces the content of soft-deleted comments
	// in thread detail views.
	DeletedCommentContent = "**komentar telah dihapus**"
)

// CommentCreationData carries a validated add-comment request.
type CommentCreationData struct {
	Content  string
	ThreadId string
	Owner    string
}

func NewCommentCreationData(p Payload) (CommentCreationData, error) {
	if err := requireFields(p, entityCommentCreation, "content", "threadId", "owner"); err != nil {
		return CommentCreationData{}, err
	}

	content, err := stringField(p, entityCommentCreation, "content")
	if err != nil {
		return CommentCreationData{}, err
	}
	threadId, err := stringField(p, entityCommentCreation, "threadId")
	if err != nil {
		return CommentCreationData{}, err
	}
	owner, err := stringField(p, entityCommentCreation, "owner")
	if err != nil {
		return CommentCreationData{}, err
	}

	return CommentCreationData{Content: content, ThreadId: threadId, Owner: owner}, nil
}

// AddedComment is the construction-result entity for a created comment.
type AddedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(p Payload) (AddedComment, error) {
	if err := requireFields(p, entityAddedComment, "id", "content", "owner"); err != nil {
		return AddedComment{}, err
	}

	id, err := stringField(p, entityAddedComment, "id")
	if err != nil {
		return AddedComment{}, err
	}
	content, err := stringField(p, entityAddedComment, "content")
	if err != nil {
		return AddedComment{}, err
	}
	owner, err := stringField(p, entityAddedComment, "owner")
	if err != nil {
		return AddedComment{}, err
	}

	return AddedComment{Id: id, Content: content, Owner: owner}, nil
}

// CommentDetail is a comment as shown inside a thread detail. Soft-deleted
// comments keep their position but expose only the redaction placeholder.
type CommentDetail struct {
	Id        string        `json:"id"`
	Content   string        `json:"content"`
	Owner     string        `json:"owner"`
	Date      time.Time     `json:"date"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

func NewCommentDetail(c Comment, likeCount int, replies []ReplyDetail) CommentDetail {
	content := c.Content
	if c.IsDelete {
		content = DeletedCommentContent
	}
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return CommentDetail{
		Id:        c.Id,
		Content:   content,
		Owner:     c.Owner,
		Date:      c.Date,
		LikeCount: likeCount,
		Replies:   replies,
	}
}
