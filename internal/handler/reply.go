package handler

import (
	"net/http"

	mw "github.com/forum-dev/forum-api/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	owner := mw.UserIdFromContext(r.Context())

	payload, err := decodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	added, err := h.replies.Create(threadId, commentId, payload, owner)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedReply": added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")
	requester := mw.UserIdFromContext(r.Context())

	if err := h.replies.Delete(threadId, commentId, replyId, requester); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
