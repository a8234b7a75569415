package handler

import (
	"net/http"

	"github.com/forum-dev/forum-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

type MockThreadService struct {
	MockCreate    func(payload domain.Payload, owner string) (domain.AddedThread, error)
	MockGetDetail func(threadId string) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(payload domain.Payload, owner string) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, owner)
	}
	return domain.AddedThread{Id: "thread-123", Title: "judul", Owner: owner}, nil
}

func (m *MockThreadService) GetDetail(threadId string) (domain.ThreadDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(threadId)
	}
	return domain.ThreadDetail{Id: threadId, Comments: []domain.CommentDetail{}}, nil
}

type MockCommentService struct {
	MockCreate func(threadId string, payload domain.Payload, owner string) (domain.AddedComment, error)
	MockDelete func(threadId, commentId, requester string) error
}

func (m *MockCommentService) Create(threadId string, payload domain.Payload, owner string) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(threadId, payload, owner)
	}
	return domain.AddedComment{Id: "comment-123", Content: "sebuah komentar", Owner: owner}, nil
}

func (m *MockCommentService) Delete(threadId, commentId, requester string) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, requester)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(threadId, commentId string, payload domain.Payload, owner string) (domain.AddedReply, error)
	MockDelete func(threadId, commentId, replyId, requester string) error
}

func (m *MockReplyService) Create(threadId, commentId string, payload domain.Payload, owner string) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(threadId, commentId, payload, owner)
	}
	return domain.AddedReply{Id: "reply-123", Content: "sebuah balasan", Owner: owner}, nil
}

func (m *MockReplyService) Delete(threadId, commentId, replyId, requester string) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, replyId, requester)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(threadId, commentId, userId string) error
}

func (m *MockLikeService) Toggle(threadId, commentId, userId string) error {
	if m.MockToggle != nil {
		return m.MockToggle(threadId, commentId, userId)
	}
	return nil
}

type MockAuthService struct {
	MockRegister func(username, password, fullname string) (domain.RegisteredUser, error)
	MockLogin    func(username, password string) (string, error)
}

func (m *MockAuthService) Register(username, password, fullname string) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(username, password, fullname)
	}
	return domain.RegisteredUser{Id: "user-123", Username: username, Fullname: fullname}, nil
}

func (m *MockAuthService) Login(username, password string) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(username, password)
	}
	return "token-abc", nil
}

// newTestRouter mounts the handler's routes without the auth middleware so
// tests can inject the requesting user directly into the context.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThreadDetail)
	r.Post("/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleCommentLike)
	return r
}
