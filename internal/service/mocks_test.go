package service

// Hand-rolled mocks with function fields, shared by the service tests.
// A nil function field means "default success" with plausible data.

import (
	"time"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
)

var testDate = time.Date(2025, 8, 8, 10, 0, 0, 0, time.UTC)

type MockThreadStorage struct {
	createThreadFunc  func(data domain.ThreadCreationData) (domain.Payload, error)
	getThreadByIdFunc func(id string) (domain.Thread, error)

	createThreadCalled bool
	getThreadIdArg     string
}

func (m *MockThreadStorage) CreateThread(data domain.ThreadCreationData) (domain.Payload, error) {
	m.createThreadCalled = true
	if m.createThreadFunc != nil {
		return m.createThreadFunc(data)
	}
	return domain.Payload{"id": "thread-123", "title": data.Title, "owner": data.Owner}, nil
}

func (m *MockThreadStorage) GetThreadById(id string) (domain.Thread, error) {
	m.getThreadIdArg = id
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.Thread{Id: id, Title: "sebuah thread", Body: "isi", Owner: "user-123", Date: testDate}, nil
}

type MockCommentStorage struct {
	createCommentFunc         func(data domain.CommentCreationData) (domain.Payload, error)
	getCommentByIdFunc        func(id string) (domain.Comment, error)
	getCommentsByThreadIdFunc func(threadId string) ([]domain.Comment, error)
	softDeleteCommentFunc     func(id string) error

	softDeleteCalled bool
	softDeleteIdArg  string
}

func (m *MockCommentStorage) CreateComment(data domain.CommentCreationData) (domain.Payload, error) {
	if m.createCommentFunc != nil {
		return m.createCommentFunc(data)
	}
	return domain.Payload{"id": "comment-123", "content": data.Content, "owner": data.Owner}, nil
}

func (m *MockCommentStorage) GetCommentById(id string) (domain.Comment, error) {
	if m.getCommentByIdFunc != nil {
		return m.getCommentByIdFunc(id)
	}
	return domain.Comment{Id: id, ThreadId: "thread-123", Content: "sebuah komentar", Owner: "user-123", Date: testDate}, nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(threadId string) ([]domain.Comment, error) {
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) SoftDeleteComment(id string) error {
	m.softDeleteCalled = true
	m.softDeleteIdArg = id
	if m.softDeleteCommentFunc != nil {
		return m.softDeleteCommentFunc(id)
	}
	return nil
}

type MockReplyStorage struct {
	createReplyFunc          func(data domain.ReplyCreationData) (domain.Payload, error)
	getReplyByIdFunc         func(id string) (domain.Reply, error)
	getRepliesByThreadIdFunc func(threadId string) ([]domain.Reply, error)
	softDeleteReplyFunc      func(id string) error

	softDeleteCalled bool
	softDeleteIdArg  string
}

func (m *MockReplyStorage) CreateReply(data domain.ReplyCreationData) (domain.Payload, error) {
	if m.createReplyFunc != nil {
		return m.createReplyFunc(data)
	}
	return domain.Payload{"id": "reply-123", "content": data.Content, "owner": data.Owner}, nil
}

func (m *MockReplyStorage) GetReplyById(id string) (domain.Reply, error) {
	if m.getReplyByIdFunc != nil {
		return m.getReplyByIdFunc(id)
	}
	return domain.Reply{Id: id, CommentId: "comment-123", Content: "sebuah balasan", Owner: "user-123", Date: testDate}, nil
}

func (m *MockReplyStorage) GetRepliesByThreadId(threadId string) ([]domain.Reply, error) {
	if m.getRepliesByThreadIdFunc != nil {
		return m.getRepliesByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockReplyStorage) SoftDeleteReply(id string) error {
	m.softDeleteCalled = true
	m.softDeleteIdArg = id
	if m.softDeleteReplyFunc != nil {
		return m.softDeleteReplyFunc(id)
	}
	return nil
}

type MockLikeStorage struct {
	isLikedFunc    func(commentId, owner string) (bool, error)
	addLikeFunc    func(commentId, owner string) error
	removeLikeFunc func(commentId, owner string) error
	countLikesFunc func(commentId string) (int, error)

	addLikeCalled    bool
	removeLikeCalled bool
}

func (m *MockLikeStorage) IsLiked(commentId, owner string) (bool, error) {
	if m.isLikedFunc != nil {
		return m.isLikedFunc(commentId, owner)
	}
	return false, nil
}

func (m *MockLikeStorage) AddLike(commentId, owner string) error {
	m.addLikeCalled = true
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, owner)
	}
	return nil
}

func (m *MockLikeStorage) RemoveLike(commentId, owner string) error {
	m.removeLikeCalled = true
	if m.removeLikeFunc != nil {
		return m.removeLikeFunc(commentId, owner)
	}
	return nil
}

func (m *MockLikeStorage) CountLikes(commentId string) (int, error) {
	if m.countLikesFunc != nil {
		return m.countLikesFunc(commentId)
	}
	return 0, nil
}

type MockUserStorage struct {
	verifyUsernameAvailableFunc func(username string) error
	createUserFunc              func(user domain.User) (domain.RegisteredUser, error)
	getUserByUsernameFunc       func(username string) (domain.User, error)
}

func (m *MockUserStorage) VerifyUsernameAvailable(username string) error {
	if m.verifyUsernameAvailableFunc != nil {
		return m.verifyUsernameAvailableFunc(username)
	}
	return nil
}

func (m *MockUserStorage) CreateUser(user domain.User) (domain.RegisteredUser, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserStorage) GetUserByUsername(username string) (domain.User, error) {
	if m.getUserByUsernameFunc != nil {
		return m.getUserByUsernameFunc(username)
	}
	return domain.User{}, &internal_errors.NotFoundError{Resource: "user"}
}

type MockTokenIssuer struct {
	newTokenFunc func(userId string) (string, error)
}

func (m *MockTokenIssuer) NewToken(userId string) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(userId)
	}
	return "token-" + userId, nil
}

// passthroughSanitizer keeps test inputs intact.
type passthroughSanitizer struct{}

func (passthroughSanitizer) Clean(text string) string { return text }
