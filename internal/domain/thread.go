package domain

import (
	"time"
)

// Thread is a persisted discussion topic. Id, Owner and Date never change
// after creation.
type Thread struct {
	Id    string
	Title string
	Body  string
	Owner string
	Date  time.Time
}

const (
	entityThreadCreation = "THREAD_CREATION"
	entityAddedThread    = "ADDED_THREAD"
)

// ThreadCreationData carries a validated create-thread request through the
// service to the storage layer.
type ThreadCreationData struct {
	Title string
	Body  string
	Owner string
}

func NewThreadCreationData(p Payload) (ThreadCreationData, error) {
	if err := requireFields(p, entityThreadCreation, "title", "body", "owner"); err != nil {
		return ThreadCreationData{}, err
	}

	title, err := stringField(p, entityThreadCreation, "title")
	if err != nil {
		return ThreadCreationData{}, err
	}
	body, err := stringField(p, entityThreadCreation, "body")
	if err != nil {
		return ThreadCreationData{}, err
	}
	owner, err := stringField(p, entityThreadCreation, "owner")
	if err != nil {
		return ThreadCreationData{}, err
	}

	return ThreadCreationData{Title: title, Body: body, Owner: owner}, nil
}

// AddedThread is the construction-result entity for a created thread.
type AddedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(p Payload) (AddedThread, error) {
	if err := requireFields(p, entityAddedThread, "id", "title", "owner"); err != nil {
		return AddedThread{}, err
	}

	id, err := stringField(p, entityAddedThread, "id")
	if err != nil {
		return AddedThread{}, err
	}
	title, err := stringField(p, entityAddedThread, "title")
	if err != nil {
		return AddedThread{}, err
	}
	owner, err := stringField(p, entityAddedThread, "owner")
	if err != nil {
		return AddedThread{}, err
	}

	return AddedThread{Id: id, Title: title, Owner: owner}, nil
}

// ThreadDetail is the assembled read model: thread, its comments ordered by
// creation time ascending, replies nested under their parent comment.
type ThreadDetail struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Owner    string          `json:"owner"`
	Date     time.Time       `json:"date"`
	Comments []CommentDetail `json:"comments"`
}

func NewThreadDetail(t Thread, comments []CommentDetail) ThreadDetail {
	if comments == nil {
		comments = []CommentDetail{}
	}
	return ThreadDetail{
		Id:       t.Id,
		Title:    t.Title,
		Body:     t.Body,
		Owner:    t.Owner,
		Date:     t.Date,
		Comments: comments,
	}
}
