package handler

import (
	"net/http"
	"testing"

	"github.com/forum-dev/forum-api/internal/domain"
	internal_errors "github.com/forum-dev/forum-api/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateCommentHandler(t *testing.T) {
	t.Run("returns 201 with the added comment", func(t *testing.T) {
		var gotThreadId string
		comments := &MockCommentService{
			MockCreate: func(threadId string, payload domain.Payload, owner string) (domain.AddedComment, error) {
				gotThreadId = threadId
				return domain.AddedComment{Id: "comment-123", Content: "sebuah komentar", Owner: owner}, nil
			},
		}
		router := newTestRouter(New(&MockAuthService{}, &MockThreadService{}, comments, &MockReplyService{}, &MockLikeService{}))

		rec := doRequest(router, http.MethodPost, "/threads/thread-123/comments", `{"content":"sebuah komentar"}`, "user-123")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "thread-123", gotThreadId)
		parsed := decodeEnvelope(t, rec)
		added := parsed["data"].(map[string]any)["addedComment"].(map[string]any)
		assert.Equal(t, "comment-123", added["id"])
		assert.Equal(t, "sebuah komentar", added["content"])
		assert.Equal(t, "user-123", added["owner"])
	})

	t.Run("returns 404 when the thread does not exist", func(t *testing.T) {
		comments := &MockCommentService{
			MockCreate: func(threadId string, payload domain.Payload, owner string) (domain.AddedComment, error) {
				return domain.AddedComment{}, &internal_errors.NotFoundError{Resource: "thread"}
			},
		}
		router := newTestRouter(New(&MockAuthService{}, &MockThreadService{}, comments, &MockReplyService{}, &MockLikeService{}))

		rec := doRequest(router, http.MethodPost, "/threads/thread-xxx/comments", `{"content":"sebuah komentar"}`, "user-123")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns 400 with translated message on validation failure", func(t *testing.T) {
		comments := &MockCommentService{
			MockCreate: func(threadId string, payload domain.Payload, owner string) (domain.AddedComment, error) {
				return domain.AddedComment{}, &internal_errors.ValidationError{Entity: "COMMENT_CREATION", Kind: internal_errors.DataType}
			},
		}
		router := newTestRouter(New(&MockAuthService{}, &MockThreadService{}, comments, &MockReplyService{}, &MockLikeService{}))

		rec := doRequest(router, http.MethodPost, "/threads/thread-123/comments", `{"content":123}`, "user-123")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		parsed := decodeEnvelope(t, rec)
		assert.Equal(t, "tidak dapat membuat komentar baru karena tipe data tidak sesuai", parsed["message"])
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotThreadId, gotCommentId, gotRequester string
		comments := &MockCommentService{
			MockDelete: func(threadId, commentId, requester string) error {
				gotThreadId, gotCommentId, gotRequester = threadId, commentId, requester
				return nil
			},
		}
		router := newTestRouter(New(&MockAuthService{}, &MockThreadService{}, comments, &MockReplyService{}, &MockLikeService{}))

		rec := doRequest(router, http.MethodDelete, "/threads/thread-123/comments/comment-123", "", "user-123")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "thread-123", gotThreadId)
		assert.Equal(t, "comment-123", gotCommentId)
		assert.Equal(t, "user-123", gotRequester)
		parsed := decodeEnvelope(t, rec)
		assert.Equal(t, "success", parsed["status"])
	})

	t.Run("returns 403 when the requester is not the owner", func(t *testing.T) {
		comments := &MockCommentService{
			MockDelete: func(threadId, commentId, requester string) error {
				return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
			},
		}
		router := newTestRouter(New(&MockAuthService{}, &MockThreadService{}, comments, &MockReplyService{}, &MockLikeService{}))

		rec := doRequest(router, http.MethodDelete, "/threads/thread-123/comments/comment-123", "", "user-456")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		parsed := decodeEnvelope(t, rec)
		assert.Equal(t, "anda tidak berhak mengakses resource ini", parsed["message"])
	})

	t.Run("returns 404 when the comment is already deleted", func(t *testing.T) {
		comments := &MockCommentService{
			MockDelete: func(threadId, commentId, requester string) error {
				return &internal_errors.NotFoundError{Resource: "komentar"}
			},
		}
		router := newTestRouter(New(&MockAuthService{}, &MockThreadService{}, comments, &MockReplyService{}, &MockLikeService{}))

		rec := doRequest(router, http.MethodDelete, "/threads/thread-123/comments/comment-123", "", "user-123")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		parsed := decodeEnvelope(t, rec)
		assert.Equal(t, "komentar tidak ditemukan", parsed["message"])
	})
}
